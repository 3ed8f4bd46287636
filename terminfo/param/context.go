package param

// Context is the mutable state a Program runs against: the operand stack,
// positional arguments, dynamic variables a-z and static variables A-Z.
//
// Statics survive across renders for the lifetime of the Context, so every
// capability rendered through the same Context sees the same A-Z. A Context
// must not be used by concurrent renders.
//
// The zero Context is ready to use.
type Context struct {
	stack   []Value
	params  [NumParams]Value
	dynamic [NumVars]Value
	static  [NumVars]Value

	// scratch output reused between renders
	out []byte
}

func NewContext() *Context {
	return &Context{
		stack: make([]Value, 0, 16),
		out:   make([]byte, 0, 64),
	}
}

// reset prepares the context for one render. Statics are left untouched.
func (c *Context) reset(args []Value) {
	c.stack = c.stack[:0]
	c.out = c.out[:0]
	c.dynamic = [NumVars]Value{}
	c.params = [NumParams]Value{}
	copy(c.params[:], args)
}

func (c *Context) push(v Value) {
	c.stack = append(c.stack, v)
}

func (c *Context) pop() (Value, error) {
	n := len(c.stack)
	if n == 0 {
		return Value{}, ErrStackUnderflow
	}
	v := c.stack[n-1]
	c.stack = c.stack[:n-1]
	return v, nil
}

// Depth is the number of values on the operand stack.
func (c *Context) Depth() int { return len(c.stack) }

// Static returns static variable i (0 for A).
func (c *Context) Static(i int) Value { return c.static[i] }

// Dynamic returns dynamic variable i (0 for a) as left by the last render.
func (c *Context) Dynamic(i int) Value { return c.dynamic[i] }

// ResetStatics clears A-Z.
func (c *Context) ResetStatics() {
	c.static = [NumVars]Value{}
}
