package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"google.golang.org/grpc/codes"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := New(CodeAlreadyOccupied, "participant 42 is already queued")
	target := New(CodeAlreadyOccupied, "different message")

	if !stderrors.Is(err, target) {
		t.Fatal("expected errors with the same code to match")
	}
	if stderrors.Is(err, New(CodeNotInAnyQueue, "x")) {
		t.Fatal("expected errors with different codes not to match")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("network down")
	err := Wrap(CodeMeetingCreateFailed, "create meeting event", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be found in chain")
	}
	if err.Error() != "create meeting event" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, CodeUnknown},
		{"plain", stderrors.New("plain"), CodeUnknown},
		{"domain", New(CodeSelfTeaming, "self team"), CodeSelfTeaming},
		{"wrapped", fmt.Errorf("outer: %w", New(CodeNotInAnyQueue, "gone")), CodeNotInAnyQueue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestGRPCCodeMapping(t *testing.T) {
	tests := []struct {
		code Code
		want codes.Code
	}{
		{CodeSelfTeaming, codes.InvalidArgument},
		{CodeLanguageUnsupported, codes.InvalidArgument},
		{CodeAlreadyOccupied, codes.FailedPrecondition},
		{CodeCannotLeaveActiveGame, codes.FailedPrecondition},
		{CodeNotInAnyQueue, codes.NotFound},
		{CodeMeetingCreateFailed, codes.Unavailable},
		{CodeRecipientUnreachable, codes.Unavailable},
		{CodeUnknown, codes.Internal},
	}
	for _, tc := range tests {
		if got := tc.code.GRPCCode(); got != tc.want {
			t.Fatalf("code %s: expected %s, got %s", tc.code, tc.want, got)
		}
	}
}
