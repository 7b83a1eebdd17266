package repository

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page     int
	PageSize int
	UserID   uint // 非 0 时只列出该用户的商品
	Search   string
}

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page     int
	PageSize int
	UserID   uint // 非 0 时只列出该用户的文章
	WithUser bool
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
}
