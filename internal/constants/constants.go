package constants

// 文章事件动作常量
const (
	PostActionCreate = "create"
	PostActionUpdate = "update"
	PostActionDelete = "delete"
)

// 实时推送频道常量
const (
	ChannelPosts = "posts"
)

// 上传场景常量
const (
	UploadSceneProduct = "product"
	UploadScenePost    = "post"
	UploadSceneCommon  = "common"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 队列任务类型常量
const (
	TaskAssetCleanup = "asset:cleanup"
)

// 会话常量
const (
	SessionCookieName = "sf_session"
	ContextUserIDKey  = "user_id"
	ContextEmailKey   = "user_email"
	ContextAuthedKey  = "is_authenticated"
)
