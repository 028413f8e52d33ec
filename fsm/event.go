package fsm

// Event is one of the Evt1-Evt19 DUL events, PS3.8 Table 9-1. Events
// arrive from three sources: the local service user (primitives), the
// remote peer (decoded PDUs), and the transport/timer layer.
type Event int

const (
	Evt1  Event = iota + 1 // A-ASSOCIATE request (local user)
	Evt2                   // Transport connect confirmation
	Evt3                   // A-ASSOCIATE-AC PDU received
	Evt4                   // A-ASSOCIATE-RJ PDU received
	Evt5                   // Transport connection indication (incoming connect)
	Evt6                   // A-ASSOCIATE-RQ PDU received
	Evt7                   // A-ASSOCIATE response primitive (accept)
	Evt8                   // A-ASSOCIATE response primitive (reject)
	Evt9                   // P-DATA request primitive
	Evt10                  // P-DATA-TF PDU received
	Evt11                  // A-RELEASE request primitive
	Evt12                  // A-RELEASE-RQ PDU received
	Evt13                  // A-RELEASE-RP PDU received
	Evt14                  // A-RELEASE response primitive
	Evt15                  // A-ABORT request primitive (local user)
	Evt16                  // A-ABORT PDU received
	Evt17                  // Transport connection closed indication
	Evt18                  // ARTIM timer expired
	Evt19                  // Unrecognized or invalid PDU received
)

func (e Event) String() string {
	names := map[Event]string{
		Evt1: "Evt1", Evt2: "Evt2", Evt3: "Evt3", Evt4: "Evt4", Evt5: "Evt5",
		Evt6: "Evt6", Evt7: "Evt7", Evt8: "Evt8", Evt9: "Evt9", Evt10: "Evt10",
		Evt11: "Evt11", Evt12: "Evt12", Evt13: "Evt13", Evt14: "Evt14", Evt15: "Evt15",
		Evt16: "Evt16", Evt17: "Evt17", Evt18: "Evt18", Evt19: "Evt19",
	}
	if n, ok := names[e]; ok {
		return n
	}
	return "Evt?"
}
