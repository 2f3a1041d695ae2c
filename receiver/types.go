package receiver

// UniversalReceiverParams is the parameter block of a universal receiver
// call. The payload layout is determined by the type tag.
type UniversalReceiverParams struct {
	Type    Type
	Payload []byte
}
