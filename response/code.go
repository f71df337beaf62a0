package response

type ErrorCode int

const (
	OK ErrorCode = 0

	InvalidRequest ErrorCode = 40001
	NotFound       ErrorCode = 40401

	ValidationFailed ErrorCode = 50001
	StorageFailure   ErrorCode = 50002

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
