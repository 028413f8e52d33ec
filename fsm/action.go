package fsm

// Action identifies one of the PS3.8 Table 9-10 actions the reactor must
// perform alongside a state transition. Names follow the standard's own
// labels (AE-n, DT-n, AR-n, AA-n) so the transition table reads the same
// as the annex it implements.
type Action int

const (
	ActionNone Action = iota

	AE1 // Issue TRANSPORT CONNECT request to transport service
	AE2 // Send A-ASSOCIATE-RQ PDU
	AE3 // Issue A-ASSOCIATE confirmation (accept) primitive
	AE4 // Issue A-ASSOCIATE confirmation (reject) primitive
	AE5 // Issue transport connection response primitive, start ARTIM timer
	AE6 // Stop ARTIM timer; issue A-ASSOCIATE indication primitive
	AE7 // Send A-ASSOCIATE-AC PDU
	AE8 // Send A-ASSOCIATE-RJ PDU, start ARTIM timer

	DT1 // Send P-DATA-TF PDU
	DT2 // Issue P-DATA indication primitive

	AR1  // Send A-RELEASE-RQ PDU
	AR2  // Issue A-RELEASE indication primitive
	AR3  // Issue A-RELEASE confirmation primitive, close transport connection
	AR4  // Issue A-RELEASE-RP PDU, start ARTIM timer
	AR5  // Stop ARTIM timer
	AR6  // Issue P-DATA indication primitive (draining during release)
	AR7  // Issue P-DATA-TF PDU (draining during release)
	AR8  // Issue A-RELEASE indication (collision)
	AR9  // Send A-RELEASE-RP PDU (collision)
	AR10 // Issue A-RELEASE confirmation primitive (collision)

	AA1 // Send A-ABORT PDU (service-user sourced), start/restart ARTIM timer
	AA2 // Stop ARTIM timer, close transport connection
	AA3 // Issue A-ABORT or A-P-ABORT indication, close transport connection
	AA4 // Issue A-P-ABORT indication primitive
	AA5 // Stop ARTIM timer
	AA6 // Ignore PDU
	AA7 // Send A-ABORT PDU
	AA8 // Send A-ABORT PDU (service-provider sourced), issue A-P-ABORT indication, start ARTIM timer
)

func (a Action) String() string {
	names := map[Action]string{
		ActionNone: "none",
		AE1: "AE-1", AE2: "AE-2", AE3: "AE-3", AE4: "AE-4", AE5: "AE-5", AE6: "AE-6", AE7: "AE-7", AE8: "AE-8",
		DT1: "DT-1", DT2: "DT-2",
		AR1: "AR-1", AR2: "AR-2", AR3: "AR-3", AR4: "AR-4", AR5: "AR-5", AR6: "AR-6", AR7: "AR-7", AR8: "AR-8", AR9: "AR-9", AR10: "AR-10",
		AA1: "AA-1", AA2: "AA-2", AA3: "AA-3", AA4: "AA-4", AA5: "AA-5", AA6: "AA-6", AA7: "AA-7", AA8: "AA-8",
	}
	if n, ok := names[a]; ok {
		return n
	}
	return "Action?"
}
