// Package validator implements tag-driven struct validation used by the
// pipeline's input stage. Rules live in an extensible registry; failures
// collect into ValidationErrors rather than stopping at the first problem,
// so a 422 response can report everything wrong with the input at once.
package validator
