// Package fsm implements the DICOM Upper Layer's association state
// machine, PS3.8 §9.2: thirteen states, the Evt1-Evt19 event set, and the
// action table (PS3.8 Table 9-10) that maps (state, event) to the next
// state and the action the DUL provider must take.
package fsm

// State is one of the thirteen association states defined in PS3.8
// Table 9-1.
type State int

const (
	Sta1  State = iota + 1 // Idle
	Sta2                   // Transport connection open, awaiting A-ASSOCIATE-RQ PDU
	Sta3                   // Awaiting local A-ASSOCIATE response primitive
	Sta4                   // Awaiting transport connection opening to complete
	Sta5                   // Awaiting A-ASSOCIATE-AC or A-ASSOCIATE-RJ PDU
	Sta6                   // Association established, ready for data transfer
	Sta7                   // Awaiting A-RELEASE-RP PDU
	Sta8                   // Awaiting local A-RELEASE response primitive
	Sta9                   // Release collision: awaiting local A-RELEASE response, received RQ
	Sta10                  // Release collision: awaiting A-RELEASE-RP, issued RQ
	Sta11                  // Release collision: awaiting A-RELEASE-RP, issued RQ
	Sta12                  // Release collision: awaiting local A-RELEASE response, received RQ
	Sta13                  // Awaiting transport connection close
)

func (s State) String() string {
	switch s {
	case Sta1:
		return "Sta1"
	case Sta2:
		return "Sta2"
	case Sta3:
		return "Sta3"
	case Sta4:
		return "Sta4"
	case Sta5:
		return "Sta5"
	case Sta6:
		return "Sta6"
	case Sta7:
		return "Sta7"
	case Sta8:
		return "Sta8"
	case Sta9:
		return "Sta9"
	case Sta10:
		return "Sta10"
	case Sta11:
		return "Sta11"
	case Sta12:
		return "Sta12"
	case Sta13:
		return "Sta13"
	default:
		return "Sta?"
	}
}
