// Code generated by hand. DO NOT EDIT.

package generated

func mixed(a int,
	b string) { // want `Parameters should be on separate lines \(lg:prm\)`
	_, _ = a, b
}
