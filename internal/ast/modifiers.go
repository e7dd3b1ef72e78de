package ast

import "strings"

// Modifiers: битовое множество модификаторов класса или члена.
type Modifiers uint16

const (
	ModPublic Modifiers = 1 << iota
	ModPrivate
	ModProtected
	ModGlobal
	ModStatic
	ModFinal
	ModOverride
	ModVirtual
	ModAbstract
	ModTransient
	ModWebservice
	ModTestMethod
	ModWithSharing
	ModWithoutSharing
	ModInheritedSharing
)

var modifierNames = [...]string{
	"public", "private", "protected", "global", "static", "final", "override",
	"virtual", "abstract", "transient", "webservice", "testmethod",
	"with sharing", "without sharing", "inherited sharing",
}

func (m Modifiers) Has(flag Modifiers) bool { return m&flag != 0 }

// String печатает модификаторы в каноническом порядке, через пробел.
func (m Modifiers) String() string {
	parts := make([]string, 0, 4)
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " ")
}
