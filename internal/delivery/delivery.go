// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is implemented by every transport that can serve requests.
// Servers are collected into an fx value group and started together.
type Delivery interface {
	Serve(ctx context.Context) error
}
