package types

const (
	ActionRabbitMQConnected       = "rabbitmq_connected"
	ActionRabbitConnectionClosed  = "rabbitmq_connection_closed"
	ActionRabbitConnectionClosing = "rabbitmq_connection_closing"
	ActionRabbitReconnected       = "rabbitmq_reconnection_success"

	ActionDatabaseTransactionFailed = "database_transaction_failed"
	ActionExternalServiceFailed     = "external_service_failed"

	ActionSearchCompleted = "booking_search_completed"
	ActionPositionTick    = "booking_position_tick"
	ActionSessionLoaded   = "driver_session_loaded"
	ActionLoginResolved   = "driver_login_resolved"
	ActionApplicationSent = "driver_application_sent"
	ActionJitterTick      = "driver_jitter_tick"
)
