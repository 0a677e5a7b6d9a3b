package rabbitmq

// QueueConfig binds one queue to the notifications exchange.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// Routing key and queue for admin order status decisions.
const (
	OrderStatusQueue      = "order.status"
	OrderStatusRoutingKey = "order.status"
)

// GetNotificationQueues returns the queues the notifier consumes.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: OrderStatusQueue, RoutingKey: OrderStatusRoutingKey},
	}
}
