package a2a

import "context"

/*
Client is the contract a protocol client transport satisfies.  The core
defines only the shapes; connection handling, retries and streaming belong
to the implementation.
*/
type Client interface {
	SendTask(ctx context.Context, params TaskSendParams) (*Task, error)
	GetTask(ctx context.Context, params TaskQueryParams) (*Task, error)
	CancelTask(ctx context.Context, params TaskIDParams) (*Task, error)
	SetPushNotification(ctx context.Context, config TaskPushNotificationConfig) (*TaskPushNotificationConfig, error)
	GetPushNotification(ctx context.Context, params TaskIDParams) (*TaskPushNotificationConfig, error)
	AgentCard(ctx context.Context) (*AgentCard, error)
}

/*
Server is the contract a protocol server transport dispatches to.  Errors
returned from these methods cross the wire via jsonrpc.ErrorFrom.
*/
type Server interface {
	HandleSendTask(ctx context.Context, params TaskSendParams) (*Task, error)
	HandleGetTask(ctx context.Context, params TaskQueryParams) (*Task, error)
	HandleCancelTask(ctx context.Context, params TaskIDParams) (*Task, error)
	HandleSetPushNotification(ctx context.Context, config TaskPushNotificationConfig) (*TaskPushNotificationConfig, error)
	HandleGetPushNotification(ctx context.Context, params TaskIDParams) (*TaskPushNotificationConfig, error)
}
