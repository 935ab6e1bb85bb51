package ast

// Convenience constructors. These exist purely to keep the synthesizer
// (which builds a lot of small literal and identifier nodes) readable; they
// hold no logic of their own.

func Ident(name string) *Identifier       { return &Identifier{Name: name} }
func Str(value string) *StringLiteral     { return &StringLiteral{Value: value} }
func Bool(value bool) *BooleanLiteral     { return &BooleanLiteral{Value: value} }
func Undefined() *Identifier              { return &Identifier{Name: "undefined"} }

// Member builds `object.property`.
func Member(object Expression, property string) *MemberExpression {
	return &MemberExpression{Object: object, Property: property}
}

// Call builds `callee(args...)`.
func Call(callee Expression, args ...Expression) *CallExpression {
	return &CallExpression{Callee: callee, Arguments: args}
}

// StrictEquals builds `left === right`.
func StrictEquals(left, right Expression) *BinaryExpression {
	return &BinaryExpression{Operator: "===", Left: left, Right: right}
}

// And builds `left && right`.
func And(left, right Expression) *LogicalExpression {
	return &LogicalExpression{Operator: "&&", Left: left, Right: right}
}

// Or builds `left || right`.
func Or(left, right Expression) *LogicalExpression {
	return &LogicalExpression{Operator: "||", Left: left, Right: right}
}

// AndAll left-folds And over a non-empty slice of expressions.
func AndAll(exprs []Expression) Expression {
	if len(exprs) == 0 {
		return Undefined()
	}
	acc := exprs[0]
	for _, e := range exprs[1:] {
		acc = And(acc, e)
	}
	return acc
}
