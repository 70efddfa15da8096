package encode

import (
	"strings"

	"github.com/fatih/color"
)

// Class groups encoded elements for coloring.
type Class int

const (
	KeyClass Class = iota
	StringClass
	NumberClass
	BoolClass
	DatetimeClass
)

func Classes() []Class {
	return []Class{KeyClass, StringClass, NumberClass, BoolClass, DatetimeClass}
}

type Colorable struct {
	Class Class
	Attr  ColorAttr
}

type ColorAttr int

const (
	ValueColor ColorAttr = iota
	DecorColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, cls := range Classes() {
		able := Colorable{
			Class: cls,
			Attr:  DecorColor,
		}
		colors.Map[able] = color.BlueString
		able.Attr = SepColor
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Class = KeyClass
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()

	able.Class = NumberClass
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Class = BoolClass
	colors.Map[able] = color.CyanString

	able.Class = DatetimeClass
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	able.Class = StringClass
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(cls Class, a ColorAttr, s string) string {
	return c.Get(cls, a)(s)
}

func (c *Colors) Get(cls Class, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Class: cls, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
