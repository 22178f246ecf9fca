package export

import (
	"fmt"

	"github.com/alexisbeaulieu97/brandkit/internal/tokens"
)

// Group names one section of the flat token list.
type Group string

const (
	GroupColor   Group = "color"
	GroupText    Group = "text"
	GroupSpacing Group = "spacing"
	GroupRadius  Group = "radius"
)

// Row is one custom property: its name, value and a short description.
type Row struct {
	Group       Group
	Token       string
	Value       string
	Description string
}

// Rows flattens ts into custom properties named --color-{ramp}-{shade},
// --text-{key}, --spacing-{key} and --radius-{key}, in that order.
func Rows(ts tokens.TokenSet) []Row {
	var rows []Row
	for _, named := range ts.Colors.Ramps() {
		for _, e := range named.Ramp.Entries() {
			rows = append(rows, Row{
				Group:       GroupColor,
				Token:       fmt.Sprintf("--color-%s-%s", named.Name, e.Key),
				Value:       e.Value,
				Description: fmt.Sprintf("%s %s", named.Name, e.Key),
			})
		}
	}
	for _, e := range ts.Typography.Scale.Entries() {
		rows = append(rows, Row{Group: GroupText, Token: "--text-" + e.Key, Value: e.Value, Description: "Font size " + e.Key})
	}
	for _, e := range ts.Spacing.Entries() {
		rows = append(rows, Row{Group: GroupSpacing, Token: "--spacing-" + e.Key, Value: e.Value, Description: "Spacing " + e.Key})
	}
	for _, e := range ts.BorderRadius.Entries() {
		rows = append(rows, Row{Group: GroupRadius, Token: "--radius-" + e.Key, Value: e.Value, Description: "Radius " + e.Key})
	}
	return rows
}
