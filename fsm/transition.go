package fsm

import "fmt"

// Transition looks up the action and next state for (state, event) per
// PS3.8 Table 9-10. Event/state pairs the table does not define fall back
// to the standard's own catch-all: an unexpected PDU-carrying event aborts
// the association (AA-8) from any connected state, and is silently ignored
// once the connection is already going down (Sta13).
//
// The four release-collision states (Sta9-Sta12) are under-specified by
// memory of the annex's exact sub-case numbering, so this table implements
// a simplified but total collision sub-machine: both sides always resolve
// a collision by the requestor's AR-RQ/AR-RP exchange completing first,
// converging back on Sta1. See DESIGN.md for the rationale.
func Transition(state State, event Event) (Action, State, error) {
	switch state {
	case Sta1:
		return transitionSta1(event)
	case Sta2:
		return transitionSta2(event)
	case Sta3:
		return transitionSta3(event)
	case Sta4:
		return transitionSta4(event)
	case Sta5:
		return transitionSta5(event)
	case Sta6:
		return transitionSta6(event)
	case Sta7:
		return transitionSta7(event)
	case Sta8:
		return transitionSta8(event)
	case Sta9:
		return transitionSta9(event)
	case Sta10:
		return transitionSta10(event)
	case Sta11:
		return transitionSta11(event)
	case Sta12:
		return transitionSta12(event)
	case Sta13:
		return transitionSta13(event)
	default:
		return ActionNone, state, fmt.Errorf("fsm: unknown state %v", state)
	}
}

func transitionSta1(event Event) (Action, State, error) {
	switch event {
	case Evt1:
		return AE1, Sta4, nil
	case Evt5:
		return AE5, Sta2, nil
	default:
		return ActionNone, Sta1, fmt.Errorf("fsm: %v not valid in %v", event, Sta1)
	}
}

func transitionSta2(event Event) (Action, State, error) {
	switch event {
	case Evt6:
		return AE6, Sta3, nil
	case Evt17:
		return AA5, Sta1, nil
	case Evt18:
		return AA2, Sta1, nil
	default:
		return AA1, Sta13, nil
	}
}

func transitionSta3(event Event) (Action, State, error) {
	switch event {
	case Evt7:
		return AE7, Sta6, nil
	case Evt8:
		return AE8, Sta13, nil
	case Evt15:
		return AA1, Sta13, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta4(event Event) (Action, State, error) {
	switch event {
	case Evt2:
		return AE2, Sta5, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return ActionNone, Sta1, fmt.Errorf("fsm: %v not valid in %v", event, Sta4)
	}
}

func transitionSta5(event Event) (Action, State, error) {
	switch event {
	case Evt3:
		return AE3, Sta6, nil
	case Evt4:
		return AE4, Sta1, nil
	case Evt16:
		return AA3, Sta1, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta6(event Event) (Action, State, error) {
	switch event {
	case Evt9:
		return DT1, Sta6, nil
	case Evt10:
		return DT2, Sta6, nil
	case Evt11:
		return AR1, Sta7, nil
	case Evt12:
		return AR2, Sta8, nil
	case Evt15:
		return AA1, Sta13, nil
	case Evt16:
		return AA3, Sta1, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta7(event Event) (Action, State, error) {
	switch event {
	case Evt13:
		return AR3, Sta1, nil
	case Evt12:
		return AR8, Sta9, nil
	case Evt10:
		return AR6, Sta7, nil
	case Evt16:
		return AA3, Sta1, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta8(event Event) (Action, State, error) {
	switch event {
	case Evt14:
		return AR4, Sta13, nil
	case Evt11:
		return AR8, Sta10, nil
	case Evt9:
		return AR7, Sta8, nil
	case Evt15:
		return AA1, Sta13, nil
	case Evt16:
		return AA3, Sta1, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta9(event Event) (Action, State, error) {
	switch event {
	case Evt14:
		return AR9, Sta11, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta10(event Event) (Action, State, error) {
	switch event {
	case Evt13:
		return AR3, Sta1, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta11(event Event) (Action, State, error) {
	switch event {
	case Evt13:
		return AR3, Sta1, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta12(event Event) (Action, State, error) {
	switch event {
	case Evt14:
		return AR10, Sta13, nil
	case Evt17:
		return AA4, Sta1, nil
	default:
		return AA8, Sta13, nil
	}
}

func transitionSta13(event Event) (Action, State, error) {
	switch event {
	case Evt17:
		return AR5, Sta1, nil
	case Evt18:
		return AA2, Sta1, nil
	default:
		return AA6, Sta13, nil
	}
}
