package katanatsl

import (
	"fmt"
	"strconv"
	"strings"
)

// MalformedTokenError reports a token that is not exactly two hex digits.
type MalformedTokenError struct {
	Field  string
	Offset int
	Token  string
}

func (e *MalformedTokenError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed token %q", e.Token)
	}
	return fmt.Sprintf("%s: malformed token %q at offset %d", e.Field, e.Token, e.Offset)
}

// WrongSectionLengthError reports a section whose token count is not one of
// the accepted lengths.
type WrongSectionLengthError struct {
	Section  string
	Expected []int
	Actual   int
}

func (e *WrongSectionLengthError) Error() string {
	return fmt.Sprintf("section %s: must contain exactly %s items, not %d",
		e.Section, joinLengths(e.Expected), e.Actual)
}

func joinLengths(ns []int) string {
	if len(ns) == 0 {
		return "?"
	}
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " or " + parts[len(parts)-1]
}

// DomainViolationError reports a decoded value outside its range or
// closed set.
type DomainViolationError struct {
	Field  string
	Raw    int
	Value  float64
	Domain string
}

func (e *DomainViolationError) Error() string {
	field := e.Field
	if field == "" {
		field = "value"
	}
	return fmt.Sprintf("%s: value %s (raw %d) outside domain %s",
		field, strconv.FormatFloat(e.Value, 'g', -1, 64), e.Raw, e.Domain)
}

// UnknownEnumCodeError reports a byte code with no variant in its domain.
type UnknownEnumCodeError struct {
	Field  string
	Domain string
	Code   uint8
}

func (e *UnknownEnumCodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unknown %s code 0x%02X", e.Domain, e.Code)
	}
	return fmt.Sprintf("%s: unknown %s code 0x%02X", e.Field, e.Domain, e.Code)
}

// InvalidContourPairError reports a contour selector pair outside the four
// defined combinations.
type InvalidContourPairError struct {
	X, Y int
}

func (e *InvalidContourPairError) Error() string {
	return fmt.Sprintf("invalid values for contour: (%d, %d)", e.X, e.Y)
}

// NameTooLongError reports a patch name over MaxNameLength characters.
type NameTooLongError struct {
	Length int
}

func (e *NameTooLongError) Error() string {
	return fmt.Sprintf("patch name must be %d chars or fewer, not %d", MaxNameLength, e.Length)
}

// UnsupportedDeviceError reports a document targeting another device.
type UnsupportedDeviceError struct {
	Device string
}

func (e *UnsupportedDeviceError) Error() string {
	return fmt.Sprintf("unsupported device: %q (want %q)", e.Device, SupportedDevice)
}

// MissingSectionError reports a required paramSet field that is absent.
type MissingSectionError struct {
	Section string
}

func (e *MissingSectionError) Error() string {
	return fmt.Sprintf("missing required section %s", e.Section)
}

// InvalidMemoError reports a memo that is neither a string, null, nor a
// memo object.
type InvalidMemoError struct {
	Reason string
}

func (e *InvalidMemoError) Error() string {
	return "invalid memo: " + e.Reason
}
