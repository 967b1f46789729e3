/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package schema

// Display label and description.
//
// Undefined label differs from label equal to name.
type withLabel struct {
	label        string
	labelDefined bool
	description  string
}

func (l *withLabel) Description() string { return l.description }

func (l *withLabel) IsDisplayLabelDefined() bool { return l.labelDefined }

func (l *withLabel) SetDescription(d string) { l.description = d }

func (l *withLabel) SetDisplayLabel(label string) {
	l.label = label
	l.labelDefined = true
}

func (l *withLabel) ClearDisplayLabel() {
	l.label = ""
	l.labelDefined = false
}

func (l *withLabel) displayLabel(name string) string {
	if l.labelDefined {
		return l.label
	}
	return name
}
