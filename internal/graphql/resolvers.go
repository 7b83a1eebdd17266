package graphql

import (
	"context"

	"github.com/graphql-go/graphql"

	"github.com/storefront-next/internal/service"
)

type ctxKey string

// ctxUserIDKey 认证中间件解析出的用户 ID 在请求上下文中的键
const ctxUserIDKey ctxKey = "graphql_user_id"

// WithUserID 把已认证用户 ID 注入 GraphQL 执行上下文
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, ctxUserIDKey, userID)
}

func userIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(ctxUserIDKey).(uint)
	return id, ok && id > 0
}

// Resolver GraphQL resolver 集合，复用 REST 的 service 层
type Resolver struct {
	auth  *service.AuthService
	posts *service.PostService
}

// NewResolver 创建 resolver
func NewResolver(auth *service.AuthService, posts *service.PostService) *Resolver {
	return &Resolver{auth: auth, posts: posts}
}

// CreateUser 注册账号
func (r *Resolver) CreateUser(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)
	displayName, _ := p.Args["display_name"].(string)

	user, err := r.auth.SignUp(p.Context, service.SignUpInput{
		Email:       email,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return user, nil
}

// Login 校验凭证并签发 JWT
func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	user, err := r.auth.Login(p.Context, service.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, wrapError(err)
	}
	token, err := r.auth.IssueToken(user)
	if err != nil {
		return nil, wrapError(err)
	}
	return map[string]interface{}{
		"token":   token,
		"user_id": int(user.ID),
	}, nil
}

// GetPosts 帖子分页列表
func (r *Resolver) GetPosts(p graphql.ResolveParams) (interface{}, error) {
	page, _ := p.Args["page"].(int)
	if page < 1 {
		page = 1
	}

	posts, total, err := r.posts.List(p.Context, page, 0)
	if err != nil {
		return nil, wrapError(err)
	}
	pageSize := r.posts.PageSize()
	return map[string]interface{}{
		"posts":         posts,
		"total_posts":   int(total),
		"has_next_page": int64(page)*int64(pageSize) < total,
	}, nil
}

// GetPost 帖子详情
func (r *Resolver) GetPost(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(int)

	post, err := r.posts.Get(p.Context, uint(id))
	if err != nil {
		return nil, wrapError(err)
	}
	return post, nil
}

// CreatePost 创建帖子，要求已认证
func (r *Resolver) CreatePost(p graphql.ResolveParams) (interface{}, error) {
	uid, ok := userIDFrom(p.Context)
	if !ok {
		return nil, errUnauthenticated
	}

	title, _ := p.Args["title"].(string)
	content, _ := p.Args["content"].(string)
	imagePath, _ := p.Args["image_path"].(string)

	post, err := r.posts.Create(p.Context, uid, service.PostInput{
		Title:     title,
		Content:   content,
		ImagePath: imagePath,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return post, nil
}

// UpdatePost 更新帖子，要求已认证且为 owner
func (r *Resolver) UpdatePost(p graphql.ResolveParams) (interface{}, error) {
	uid, ok := userIDFrom(p.Context)
	if !ok {
		return nil, errUnauthenticated
	}

	id, _ := p.Args["id"].(int)
	title, _ := p.Args["title"].(string)
	content, _ := p.Args["content"].(string)
	imagePath, _ := p.Args["image_path"].(string)

	post, err := r.posts.Update(p.Context, uid, uint(id), service.PostInput{
		Title:     title,
		Content:   content,
		ImagePath: imagePath,
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return post, nil
}

// DeletePost 删除帖子，要求已认证且为 owner
func (r *Resolver) DeletePost(p graphql.ResolveParams) (interface{}, error) {
	uid, ok := userIDFrom(p.Context)
	if !ok {
		return nil, errUnauthenticated
	}

	id, _ := p.Args["id"].(int)
	if err := r.posts.Delete(p.Context, uid, uint(id)); err != nil {
		return nil, wrapError(err)
	}
	return true, nil
}
