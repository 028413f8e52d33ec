// Package interfaces contains the seams between the dul reactor and a
// hosting application.
package interfaces

import "github.com/dicomnet/dulengine/primitive"

// AssociationHandler receives the indication and confirmation primitives
// a dul.Reactor produces as an association progresses. A server
// implements it to react to incoming associations and data; a client
// implements it to react to the acceptor's responses.
type AssociationHandler interface {
	// HandleAssociate is called for both an A-ASSOCIATE indication (an
	// acceptor being asked to admit a new association) and an
	// A-ASSOCIATE confirmation (a requestor learning whether its request
	// was accepted). Distinguish the two with ind.IsRequestOrIndication.
	HandleAssociate(ind *primitive.AAssociate)

	// HandlePData is called once per P-DATA indication, carrying the
	// presentation data values of one P-DATA-TF PDU.
	HandlePData(ind *primitive.PData)

	// HandleRelease is called for both the release indication (peer
	// asked to release) and the release confirmation (peer agreed to a
	// release this side requested).
	HandleRelease(ind *primitive.ARelease)

	// HandleAbort is called when the association ends abnormally,
	// whether the peer sent an A-ABORT PDU or the local transport failed.
	HandleAbort(ind *primitive.APAbort)
}
