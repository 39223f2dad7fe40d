package interp

// Class is a Lox class value: a name, an optional superclass, and its own
// (non-inherited) methods. Calling a Class constructs a new Instance,
// running its "init" method (found via the superclass chain) if one
// exists.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// FindMethod looks up name in c's own methods, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

func (c *Class) String() string { return c.Name }

func (c *Class) Call(ev *Evaluator, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(ev.env, instance).Call(ev, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
