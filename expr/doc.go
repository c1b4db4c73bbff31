/*
Package `expr` parses and evaluates the one-line infix expressions accepted by hey-calc.

The grammar is `NUMBER (OP NUMBER)*`, where NUMBER is a non-negative decimal literal and OP is one of `+ - * / ^`.
Operands and operators may be separated by any number of spaces or tabs. There are no parentheses, no unary
operators and no negative literals: `-5` is malformed, it is not parsed as a negated 5.

Evaluation never fails. A malformed expression evaluates to 0, and so does any intermediate operation that would
produce a NaN or an infinity (division by zero included). This keeps a connection alive no matter what a peer sends.
*/
package expr
