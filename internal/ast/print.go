package ast

import "strings"

// Bytes serializes e: left operand, right operand, then a space and the
// node's own payload.
func Bytes(e Expr) []byte {
	return AppendBytes(nil, e)
}

// AppendBytes appends the serialization of e to dst.
func AppendBytes(dst []byte, e Expr) []byte {
	Walk(e, func(n Expr) {
		if p := n.Payload(); len(p) > 0 {
			dst = append(dst, ' ')
			dst = append(dst, p...)
		}
	})
	return dst
}

// StackString renders e in evaluation order, each item preceded by a space,
// e.g. " 2 3 4 * +".
func StackString(e Expr) string {
	var sb strings.Builder
	Walk(e, func(n Expr) {
		if c := n.Content(); c != "" {
			sb.WriteByte(' ')
			sb.WriteString(c)
		}
	})
	return sb.String()
}
