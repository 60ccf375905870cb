// Command railgen emits the per-arity tuple, joint and option files.
//
// The N-ary family is mechanical: each combinator exists once per arity up
// to the ceiling of 8, differing only in type parameters and positional
// arguments. Rather than hand-maintaining the duplicates, this generator
// writes tuple/tuple_gen.go, joint/*_gen.go and option/nary_gen.go from the
// templates below. Run it through go:generate in the joint package.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
)

const (
	header  = "// Code generated by railgen; DO NOT EDIT.\n\n"
	ceiling = 8
)

var letters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

func tparams(n, start int) string {
	return strings.Join(letters[start:start+n], ", ")
}

func ttype(n, start int) string {
	return fmt.Sprintf("tuple.T%d[%s]", n, tparams(n, start))
}

func vfields(v string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s.V%d", v, i+1)
	}
	return strings.Join(parts, ", ")
}

func each(n int, format string) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf(format, i+1)
	}
	return strings.Join(parts, ", ")
}

func receivers(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("r%d rail.Result[%s]", i+1, letters[i])
	}
	return strings.Join(parts, ", ")
}

func emit(path string, body func(b *strings.Builder)) {
	var b strings.Builder
	b.WriteString(header)
	body(&b)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		log.Fatalf("railgen: write %s: %v", path, err)
	}
	log.Printf("railgen: wrote %s", path)
}

func jointImports(b *strings.Builder) {
	b.WriteString("package joint\n\nimport (\n\t\"github.com/ib-77/rail/pkg/rail\"\n\t\"github.com/ib-77/rail/pkg/rail/tuple\"\n)\n")
}

func emitTuple(b *strings.Builder) {
	b.WriteString("package tuple\n")
	for n := 2; n <= ceiling; n++ {
		fmt.Fprintf(b, "\n// T%d groups %d values, preserving declaration order.\n", n, n)
		fmt.Fprintf(b, "type T%d[%s any] struct {\n", n, tparams(n, 0))
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "\tV%d %s\n", i+1, letters[i])
		}
		b.WriteString("}\n")
		fmt.Fprintf(b, "\n// Of%d builds a T%d from its elements in declaration order.\n", n, n)
		params := make([]string, n)
		fields := make([]string, n)
		for i := 0; i < n; i++ {
			params[i] = fmt.Sprintf("v%d %s", i+1, letters[i])
			fields[i] = fmt.Sprintf("V%d: v%d", i+1, i+1)
		}
		fmt.Fprintf(b, "func Of%d[%s any](%s) T%d[%s] {\n", n, tparams(n, 0), strings.Join(params, ", "), n, tparams(n, 0))
		fmt.Fprintf(b, "\treturn T%d[%s]{%s}\n", n, tparams(n, 0), strings.Join(fields, ", "))
		b.WriteString("}\n")
	}
}

func emitZip(b *strings.Builder) {
	jointImports(b)
	for n := 2; n <= ceiling; n++ {
		tt := ttype(n, 0)
		fmt.Fprintf(b, "\n// Zip%d combines %d Results into a tuple success, failing fast on the\n// first failure in declaration order.\n", n, n)
		fmt.Fprintf(b, "func Zip%d[%s any](%s) rail.Result[%s] {\n", n, tparams(n, 0), receivers(n), tt)
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "\tif r%d.IsFailure() {\n\t\treturn rail.FailureFrom[%s, %s](r%d)\n\t}\n", i+1, letters[i], tt, i+1)
		}
		fmt.Fprintf(b, "\treturn rail.Success(tuple.Of%d(%s))\n", n, each(n, "r%d.Value()"))
		b.WriteString("}\n")
	}
}

func emitCombine(b *strings.Builder) {
	jointImports(b)
	for n := 2; n <= ceiling; n++ {
		tt := ttype(n, 0)
		fmt.Fprintf(b, "\n// Combine%d evaluates all %d Results with no short-circuiting and\n// accumulates failures through an ErrorBuilder: a single failure is\n// returned unwrapped, several become one Aggregate in declaration order;\n// otherwise the values are zipped into a tuple success.\n", n, n)
		fmt.Fprintf(b, "func Combine%d[%s any](%s) rail.Result[%s] {\n", n, tparams(n, 0), receivers(n), tt)
		b.WriteString("\tb := rail.NewErrorBuilder()\n")
		for i := 0; i < n; i++ {
			fmt.Fprintf(b, "\trail.AppendFailure(b, r%d)\n", i+1)
		}
		fmt.Fprintf(b, "\tif err, ok := b.Build(); ok {\n\t\treturn rail.Failure[%s](err)\n\t}\n", tt)
		fmt.Fprintf(b, "\treturn rail.Success(tuple.Of%d(%s))\n", n, each(n, "r%d.Value()"))
		b.WriteString("}\n")
	}
}

func emitApply(b *strings.Builder) {
	jointImports(b)
	for n := 2; n <= ceiling; n++ {
		tt := ttype(n, 0)
		tp := tparams(n, 0)
		fl := vfields("t", n)

		fmt.Fprintf(b, "\n// Map%d applies f positionally to the elements of a successful tuple.\n", n)
		fmt.Fprintf(b, "func Map%d[%s, U any](r rail.Result[%s], f func(%s) U) rail.Result[U] {\n", n, tp, tt, tp)
		fmt.Fprintf(b, "\tif r.IsFailure() {\n\t\treturn rail.FailureFrom[%s, U](r)\n\t}\n", tt)
		fmt.Fprintf(b, "\tt := r.Value()\n\treturn rail.Success(f(%s))\n}\n", fl)

		fmt.Fprintf(b, "\n// Bind%d chains f positionally with short-circuit semantics.\n", n)
		fmt.Fprintf(b, "func Bind%d[%s, U any](r rail.Result[%s], f func(%s) rail.Result[U]) rail.Result[U] {\n", n, tp, tt, tp)
		fmt.Fprintf(b, "\tif r.IsFailure() {\n\t\treturn rail.FailureFrom[%s, U](r)\n\t}\n", tt)
		fmt.Fprintf(b, "\tt := r.Value()\n\treturn f(%s)\n}\n", fl)

		fmt.Fprintf(b, "\n// Match%d reduces the Result exhaustively, handing the elements to\n// onSuccess positionally.\n", n)
		fmt.Fprintf(b, "func Match%d[%s, U any](r rail.Result[%s], onSuccess func(%s) U, onFailure func(error) U) U {\n", n, tp, tt, tp)
		b.WriteString("\tif r.IsFailure() {\n\t\treturn onFailure(r.Err())\n\t}\n")
		fmt.Fprintf(b, "\tt := r.Value()\n\treturn onSuccess(%s)\n}\n", fl)

		fmt.Fprintf(b, "\n// Tap%d runs a positional side effect on a success and returns the input\n// unchanged.\n", n)
		fmt.Fprintf(b, "func Tap%d[%s any](r rail.Result[%s], effect func(%s)) rail.Result[%s] {\n", n, tp, tt, tp, tt)
		fmt.Fprintf(b, "\tif r.IsSuccess() {\n\t\tt := r.Value()\n\t\teffect(%s)\n\t}\n\treturn r\n}\n", fl)

		fmt.Fprintf(b, "\n// Ensure%d demotes a success to Failure(err) when pred rejects the\n// elements; failures pass through untouched.\n", n)
		fmt.Fprintf(b, "func Ensure%d[%s any](r rail.Result[%s], pred func(%s) bool, err error) rail.Result[%s] {\n", n, tp, tt, tp, tt)
		fmt.Fprintf(b, "\treturn r.Ensure(func(t %s) bool {\n\t\treturn pred(%s)\n\t}, err)\n}\n", tt, fl)
	}
}

func emitAppend(b *strings.Builder) {
	jointImports(b)

	b.WriteString("\n// Append1 grows a single value into a pair: binder runs only on a\n// success, and only a successful binder result is concatenated to the\n// right. The first encountered error (source's, else binder's) returns.\n")
	b.WriteString("func Append1[A, B any](r rail.Result[A], binder func(A) rail.Result[B]) rail.Result[tuple.T2[A, B]] {\n")
	b.WriteString("\tif r.IsFailure() {\n\t\treturn rail.FailureFrom[A, tuple.T2[A, B]](r)\n\t}\n")
	b.WriteString("\tb := binder(r.Value())\n\tif b.IsFailure() {\n\t\treturn rail.FailureFrom[B, tuple.T2[A, B]](b)\n\t}\n")
	b.WriteString("\treturn rail.Success(tuple.Of2(r.Value(), b.Value()))\n}\n")

	for n := 2; n < ceiling; n++ {
		src := ttype(n, 0)
		dst := ttype(n+1, 0)
		next := letters[n]
		fl := vfields("t", n)
		fmt.Fprintf(b, "\n// Append%d grows the tuple by one element, preserving declaration order;\n// the first encountered error (source's, else binder's) returns.\n", n)
		fmt.Fprintf(b, "func Append%d[%s any](r rail.Result[%s], binder func(%s) rail.Result[%s]) rail.Result[%s] {\n", n, tparams(n+1, 0), src, tparams(n, 0), next, dst)
		fmt.Fprintf(b, "\tif r.IsFailure() {\n\t\treturn rail.FailureFrom[%s, %s](r)\n\t}\n", src, dst)
		fmt.Fprintf(b, "\tt := r.Value()\n\tb := binder(%s)\n", fl)
		fmt.Fprintf(b, "\tif b.IsFailure() {\n\t\treturn rail.FailureFrom[%s, %s](b)\n\t}\n", next, dst)
		fmt.Fprintf(b, "\treturn rail.Success(tuple.Of%d(%s, b.Value()))\n}\n", n+1, fl)
	}

	for n := 2; n <= ceiling-2; n++ {
		for m := 2; n+m <= ceiling; m++ {
			src := ttype(n, 0)
			bt := ttype(m, n)
			dst := ttype(n+m, 0)
			fl := vfields("t", n)
			ul := vfields("u", m)
			fmt.Fprintf(b, "\n// Concat%dx%d concatenates the source tuple with the binder's tuple,\n// preserving left-to-right declaration order; the first encountered error\n// (source's, else binder's) returns.\n", n, m)
			fmt.Fprintf(b, "func Concat%dx%d[%s any](r rail.Result[%s], binder func(%s) rail.Result[%s]) rail.Result[%s] {\n", n, m, tparams(n+m, 0), src, tparams(n, 0), bt, dst)
			fmt.Fprintf(b, "\tif r.IsFailure() {\n\t\treturn rail.FailureFrom[%s, %s](r)\n\t}\n", src, dst)
			fmt.Fprintf(b, "\tt := r.Value()\n\tb := binder(%s)\n", fl)
			fmt.Fprintf(b, "\tif b.IsFailure() {\n\t\treturn rail.FailureFrom[%s, %s](b)\n\t}\n", bt, dst)
			fmt.Fprintf(b, "\tu := b.Value()\n\treturn rail.Success(tuple.Of%d(%s, %s))\n}\n", n+m, fl, ul)
		}
	}
}

func emitOptionNary(b *strings.Builder) {
	b.WriteString("package option\n\nimport (\n\t\"github.com/ib-77/rail/pkg/rail/tuple\"\n)\n")
	for n := 2; n <= ceiling; n++ {
		tt := ttype(n, 0)
		tp := tparams(n, 0)
		fl := vfields("t", n)
		opts := make([]string, n)
		for i := range opts {
			opts[i] = fmt.Sprintf("o%d Option[%s]", i+1, letters[i])
		}

		nones := make([]string, n)
		for i := range nones {
			nones[i] = fmt.Sprintf("o%d.IsNone()", i+1)
		}

		fmt.Fprintf(b, "\n// Zip%d combines %d Options into a tuple Option; any None yields None.\n", n, n)
		fmt.Fprintf(b, "func Zip%d[%s any](%s) Option[%s] {\n", n, tp, strings.Join(opts, ", "), tt)
		fmt.Fprintf(b, "\tif %s {\n\t\treturn None[%s]()\n\t}\n", strings.Join(nones, " || "), tt)
		fmt.Fprintf(b, "\treturn Some(tuple.Of%d(%s))\n}\n", n, each(n, "o%d.Value()"))

		fmt.Fprintf(b, "\n// Map%d applies f positionally to the elements of a present tuple.\n", n)
		fmt.Fprintf(b, "func Map%d[%s, U any](o Option[%s], f func(%s) U) Option[U] {\n", n, tp, tt, tp)
		b.WriteString("\tif o.IsNone() {\n\t\treturn None[U]()\n\t}\n")
		fmt.Fprintf(b, "\tt := o.Value()\n\treturn Some(f(%s))\n}\n", fl)

		fmt.Fprintf(b, "\n// Bind%d chains f positionally, short-circuiting on None.\n", n)
		fmt.Fprintf(b, "func Bind%d[%s, U any](o Option[%s], f func(%s) Option[U]) Option[U] {\n", n, tp, tt, tp)
		b.WriteString("\tif o.IsNone() {\n\t\treturn None[U]()\n\t}\n")
		fmt.Fprintf(b, "\tt := o.Value()\n\treturn f(%s)\n}\n", fl)

		fmt.Fprintf(b, "\n// Match%d reduces the Option exhaustively, handing the elements to\n// onSome positionally.\n", n)
		fmt.Fprintf(b, "func Match%d[%s, U any](o Option[%s], onSome func(%s) U, onNone func() U) U {\n", n, tp, tt, tp)
		b.WriteString("\tif o.IsNone() {\n\t\treturn onNone()\n\t}\n")
		fmt.Fprintf(b, "\tt := o.Value()\n\treturn onSome(%s)\n}\n", fl)

		fmt.Fprintf(b, "\n// Tap%d runs a positional side effect when present and returns the input\n// unchanged.\n", n)
		fmt.Fprintf(b, "func Tap%d[%s any](o Option[%s], effect func(%s)) Option[%s] {\n", n, tp, tt, tp, tt)
		fmt.Fprintf(b, "\tif o.IsSome() {\n\t\tt := o.Value()\n\t\teffect(%s)\n\t}\n\treturn o\n}\n", fl)
	}
}

func main() {
	emit("../tuple/tuple_gen.go", emitTuple)
	emit("zip_gen.go", emitZip)
	emit("combine_gen.go", emitCombine)
	emit("apply_gen.go", emitApply)
	emit("append_gen.go", emitAppend)
	emit("../option/nary_gen.go", emitOptionNary)
}
