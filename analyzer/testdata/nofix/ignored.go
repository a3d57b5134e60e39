//nolint:layoutguard
package nofix

func ignored(a int,
	b string) {
	_, _ = a, b
}
