// Package services holds the business logic between controllers and repositories.
//
// Services defined in this package:
//   - RelationshipService: mentor and student creation, bulk assignment,
//     mentor changes with history, and relationship queries
package services
