package lisp

import (
	"errors"
	"fmt"
	"strings"
)

// ObjectType represents the type of a parsed object
type ObjectType uint8

// Object types
const (
	ObjectTypeIdent ObjectType = iota + 1
	ObjectTypeString
	ObjectTypeList
)

var objectTypeName = map[ObjectType]string{
	ObjectTypeIdent:  "ident",
	ObjectTypeString: "string",
	ObjectTypeList:   "list",
}

func (ot ObjectType) String() string {
	if s, ok := objectTypeName[ot]; ok {
		return s
	}
	return "invalid"
}

// Object is a node of the parsed tree. Ident and String objects carry text,
// List objects own an ordered sequence of children. A tree is built once by
// a successful parse and never modified by the library afterwards.
type Object struct {
	Type     ObjectType
	Text     string
	Children []*Object
}

// NewIdent creates and returns an object of type "ident"
func NewIdent(text string) *Object {
	return &Object{Type: ObjectTypeIdent, Text: text}
}

// NewString creates and returns an object of type "string"
func NewString(text string) *Object {
	return &Object{Type: ObjectTypeString, Text: text}
}

// NewList creates and returns an object of type "list" with the given
// children
func NewList(children ...*Object) *Object {
	return &Object{Type: ObjectTypeList, Children: append([]*Object{}, children...)}
}

// Push appends a child to a list object.
func (o *Object) Push(child *Object) error {
	if o.Type != ObjectTypeList {
		return errors.New("objects of type ident or string can't accept children")
	}
	o.Children = append(o.Children, child)
	return nil
}

// Encode renders the object back into source form.
func (o *Object) Encode() string {
	switch o.Type {
	case ObjectTypeList:
		items := []string{}
		for i := range o.Children {
			items = append(items, o.Children[i].Encode())
		}
		return fmt.Sprintf("(%s)", strings.Join(items, " "))

	case ObjectTypeString:
		return fmt.Sprintf("%q", o.Text)

	case ObjectTypeIdent:
		return o.Text

	default:
		panic("unknown object type")
	}
}

func (o Object) String() string {
	if o.Type == ObjectTypeList {
		return fmt.Sprintf("(%v)[%d]", o.Type, len(o.Children))
	}
	return fmt.Sprintf("(%v): %v", o.Type, o.Text)
}

// Print displays a human-readable representation of the object tree
func Print(o *Object) {
	printLevel(o, 0)
}

func printLevel(o *Object, level int) {
	if o == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, o.Type)
	switch o.Type {
	case ObjectTypeList:
		fmt.Printf("[%d]\n", len(o.Children))
		for i := range o.Children {
			printLevel(o.Children[i], level+1)
		}

	default:
		fmt.Printf("%q\n", o.Text)
	}
}
