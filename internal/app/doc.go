// Package app composes the domain services into a running application.
//
// Package structure:
//
//	internal/app/
//	├── application.go      # Application struct and wiring
//	├── domain/             # Domain models (pure data structures)
//	│   ├── user/           # Registered users
//	│   ├── post/           # Posts and the listing projection
//	│   └── session/        # Bearer sessions
//	├── storage/            # Store interfaces
//	│   └── jsonfile/       # Flat JSON document implementation
//	├── services/           # Business logic
//	│   ├── identity/       # Registration and session lifecycle
//	│   └── posts/          # Post CRUD and likes
//	└── metrics/            # Prometheus collectors
//
// HTTP handling lives in cmd/gateway; shared middleware in internal/middleware.
package app
