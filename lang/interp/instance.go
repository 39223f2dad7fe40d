package interp

import "github.com/dolthub/swiss"

// Instance is a Lox class instance: its class, plus its own field map.
// Fields are stored in a swiss.Map rather than a builtin Go map, the same
// small-string-keyed hash map the teacher's own value types use for their
// map value, repurposed here for instance state instead.
type Instance struct {
	class  *Class
	fields *swiss.Map[string, Value]
}

func NewInstance(c *Class) *Instance {
	return &Instance{class: c, fields: swiss.NewMap[string, Value](uint32(4))}
}

func (i *Instance) String() string { return i.class.Name + " instance" }

// Get looks up name as a field first, then as a method (bound to this
// instance) on the instance's class.
func (i *Instance) Get(env *Environment, name string, line int) (Value, error) {
	if v, ok := i.fields.Get(name); ok {
		return v, nil
	}
	if m, ok := i.class.FindMethod(name); ok {
		return m.Bind(env, i), nil
	}
	return nil, newRuntimeError(ErrUndefinedProperty, line, "undefined property '%s'.", name)
}

func (i *Instance) Set(name string, v Value) {
	i.fields.Put(name, v)
}
