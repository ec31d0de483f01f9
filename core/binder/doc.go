// Package binder extracts request data into tagged Go structs. One struct
// can combine all three sources:
//
//	type updateUserRequest struct {
//		ID     string `path:"id"`
//		Expand bool   `query:"expand"`
//		Name   string `json:"name"`
//	}
//
// The pipeline applies Path, Query, and JSON binders in that order before
// validation, so a validation failure always sees the fully bound input.
package binder
