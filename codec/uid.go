package codec

import (
	"fmt"
	"strings"
)

// MaxUIDLength is the maximum permitted length of a DICOM UID.
const MaxUIDLength = 64

// EncodeUID returns the ASCII bytes of uid with no padding. Every item and
// sub-item that carries a UID prefixes it with an explicit 2-byte length,
// so unlike DICOM data-set VR values (PS3.5 §9.1) the Upper Layer wire
// format has no even-length padding requirement.
func EncodeUID(uid string, strict bool) ([]byte, error) {
	if err := ValidateUID(uid, strict); err != nil {
		return nil, err
	}
	return []byte(uid), nil
}

// DecodeUID strips a single tolerated trailing 0x00 pad byte (some peers
// pad non-conformantly even where the length prefix makes it unnecessary)
// and validates the result.
func DecodeUID(raw []byte, strict bool) (string, error) {
	if len(raw) > 0 && raw[len(raw)-1] == 0x00 {
		raw = raw[:len(raw)-1]
	}
	uid := string(raw)
	if err := ValidateUID(uid, strict); err != nil {
		return "", err
	}
	return uid, nil
}

// ValidateUID checks uid's length unconditionally, and additionally checks
// PS3.5 conformance (purely-numeric dot-separated components, no leading
// zeros except a lone "0") when strict is true.
func ValidateUID(uid string, strict bool) error {
	if len(uid) == 0 {
		return fmt.Errorf("codec: UID must not be empty")
	}
	if len(uid) > MaxUIDLength {
		return fmt.Errorf("codec: UID %q exceeds %d characters", uid, MaxUIDLength)
	}
	if !strict {
		return nil
	}

	for _, component := range strings.Split(uid, ".") {
		if component == "" {
			return fmt.Errorf("codec: UID %q has an empty component", uid)
		}
		for _, r := range component {
			if r < '0' || r > '9' {
				return fmt.Errorf("codec: UID %q component %q is not purely numeric", uid, component)
			}
		}
		if len(component) > 1 && component[0] == '0' {
			return fmt.Errorf("codec: UID %q component %q has a disallowed leading zero", uid, component)
		}
	}
	return nil
}
