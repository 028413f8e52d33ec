// Package pdu implements the wire codec for the seven DICOM Upper Layer
// PDUs and their fifteen sub-item types (PS3.8 §9.3), plus a type-dispatch
// registry used to decode an arbitrary PDU off the wire.
package pdu

// PDU type bytes, PS3.8 §9.3.
const (
	TypeAssociateRQ byte = 0x01
	TypeAssociateAC byte = 0x02
	TypeAssociateRJ byte = 0x03
	TypePDataTF     byte = 0x04
	TypeReleaseRQ   byte = 0x05
	TypeReleaseRP   byte = 0x06
	TypeAbort       byte = 0x07
)

// Item and sub-item type bytes, PS3.8 §9.3.
const (
	ItemTypeApplicationContext            byte = 0x10
	ItemTypePresentationContextRQ         byte = 0x20
	ItemTypePresentationContextAC         byte = 0x21
	ItemTypeAbstractSyntax                byte = 0x30
	ItemTypeTransferSyntax                byte = 0x40
	ItemTypeUserInformation                byte = 0x50
	ItemTypeMaxLength                     byte = 0x51
	ItemTypeImplementationClassUID        byte = 0x52
	ItemTypeAsyncOperationsWindow         byte = 0x53
	ItemTypeRoleSelection                 byte = 0x54
	ItemTypeImplementationVersionName     byte = 0x55
	ItemTypeSOPClassExtendedNegotiation   byte = 0x56
	ItemTypeSOPClassCommonExtendedNeg     byte = 0x57
	ItemTypeUserIdentityRQ                byte = 0x58
	ItemTypeUserIdentityAC                byte = 0x59
)

// typeName is used for decode-error messages and logging.
func typeName(t byte) string {
	switch t {
	case TypeAssociateRQ:
		return "A-ASSOCIATE-RQ"
	case TypeAssociateAC:
		return "A-ASSOCIATE-AC"
	case TypeAssociateRJ:
		return "A-ASSOCIATE-RJ"
	case TypePDataTF:
		return "P-DATA-TF"
	case TypeReleaseRQ:
		return "A-RELEASE-RQ"
	case TypeReleaseRP:
		return "A-RELEASE-RP"
	case TypeAbort:
		return "A-ABORT"
	default:
		return "unknown-pdu-type"
	}
}
