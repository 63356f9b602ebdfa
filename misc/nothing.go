package misc

// Nothing is a placeholder for rpc methods with no payload in one direction.
type Nothing struct{}
