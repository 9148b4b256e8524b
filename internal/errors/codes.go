// Package errors provides structured error handling for the matchmaking core.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Queue errors
	CodeAlreadyOccupied       Code = "QUEUE_ALREADY_OCCUPIED"
	CodeSelfTeaming           Code = "QUEUE_SELF_TEAMING"
	CodeCannotLeaveActiveGame Code = "QUEUE_CANNOT_LEAVE_ACTIVE_GAME"
	CodeNotInAnyQueue         Code = "QUEUE_NOT_IN_ANY_QUEUE"
	CodeLanguageUnsupported   Code = "QUEUE_LANGUAGE_UNSUPPORTED"

	// Participant errors
	CodeParticipantIDRequired Code = "PARTICIPANT_ID_REQUIRED"

	// External boundary errors
	CodeMeetingCreateFailed  Code = "MEETING_CREATE_FAILED"
	CodeMeetingDeleteFailed  Code = "MEETING_DELETE_FAILED"
	CodeRecipientUnreachable Code = "RECIPIENT_UNREACHABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeSelfTeaming,
		CodeLanguageUnsupported,
		CodeParticipantIDRequired:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeAlreadyOccupied,
		CodeCannotLeaveActiveGame:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotInAnyQueue:
		return codes.NotFound

	// Unavailable - external collaborator failed
	case CodeMeetingCreateFailed,
		CodeMeetingDeleteFailed,
		CodeRecipientUnreachable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
