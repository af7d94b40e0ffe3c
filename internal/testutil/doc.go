// Package testutil contains helper builders and fakes used across tests to
// reduce boilerplate when constructing invocations and DOM fixtures. These
// helpers are not intended for production usage.
package testutil
