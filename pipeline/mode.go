// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"strings"
)

// Mode selects how much of the analysis Run performs.
type Mode int

const (
	// Standard runs the projector branch only.
	Standard Mode = iota
	// Enhanced adds the SVD model and scores.
	Enhanced
	// Full adds the Q_study feature record.
	Full
)

var modeNames = [...]string{Standard: "standard", Enhanced: "enhanced", Full: "full"}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m < Standard || m > Full {
		return fmt.Sprintf("Mode(%d)", int(m))
	}

	return modeNames[m]
}

// ParseMode maps "standard", "enhanced" or "full" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Mode(i), nil
		}
	}

	return Standard, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// withSVD reports whether the mode fits an SVD model.
func (m Mode) withSVD() bool { return m >= Enhanced }

// withQStudy reports whether the mode computes Q_study features.
func (m Mode) withQStudy() bool { return m == Full }
