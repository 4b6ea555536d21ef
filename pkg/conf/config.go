// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package conf

type Merge struct {
	// Policy is the default conflict policy: "strict", "first", "last" or
	// "join".
	Policy string `yaml:"policy,omitempty" json:"policy,omitempty"`

	// JoinSeparator joins distinct values under the "join" policy.
	JoinSeparator string `yaml:"joinSeparator,omitempty" json:"joinSeparator,omitempty"`

	// IgnoreColumns holds glob patterns of columns whose conflicts always
	// resolve to the first non-empty value.
	IgnoreColumns []string `yaml:"ignoreColumns,omitempty" json:"ignoreColumns,omitempty"`
}

type CSV struct {
	// Delimiter is the field separator, a single character. Empty means
	// comma.
	Delimiter string `yaml:"delimiter,omitempty" json:"delimiter,omitempty"`

	// NA is the sentinel that reads as an empty value and that empty values
	// serialize back to. Unset defaults to "-", matching the upstream data
	// exports.
	NA *string `yaml:"na,omitempty" json:"na,omitempty"`
}

type Config struct {
	Merge *Merge `yaml:"merge,omitempty" json:"merge,omitempty"`
	CSV   *CSV   `yaml:"csv,omitempty" json:"csv,omitempty"`
}

func strPtr(s string) *string {
	return &s
}

// Default returns the configuration used when no file overrides anything.
func Default() *Config {
	return &Config{
		Merge: &Merge{
			Policy:        "strict",
			JoinSeparator: ";",
		},
		CSV: &CSV{
			NA: strPtr("-"),
		},
	}
}
