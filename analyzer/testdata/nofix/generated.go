// Code generated by hand. DO NOT EDIT.

package nofix

func generated(a int,
	b string) {
	_, _ = a, b
}
