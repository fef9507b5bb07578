package ast

// Walk traverses the tree in postfix order, calling fn for every node.
func Walk(e Expr, fn func(Expr)) {
	if b, ok := e.(*BinaryExpr); ok {
		Walk(b.Left, fn)
		Walk(b.Right, fn)
	}
	fn(e)
}
