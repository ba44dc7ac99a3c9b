// Package service contains the business logic of the application:
// arithmetic and greeting operations, user account management with
// credential hashing and token issuance, and application metadata.
//
// Services sit between the HTTP handlers and the store layer. They own
// the domain rules (duplicate checks, password verification, token
// lifetimes) while delegating persistence to repositories.
package service
