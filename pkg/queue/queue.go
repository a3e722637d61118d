package queue

// Queue is a FIFO of pending items handed from any goroutine to a single reader.
type Queue interface {
	// Enqueue adds an item to the end of the queue. It fails instead of blocking when the queue is full.
	Enqueue(item interface{}) error
	// Size returns the number of pending items.
	Size() int
	// ReadAllMessages removes and returns every pending item in arrival order.
	ReadAllMessages() ([]interface{}, error)
	// ClearQueue drops every pending item.
	ClearQueue()
}
