package graphql

import (
	"github.com/graphql-go/graphql"
)

// userType GraphQL 用户对象
var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":           &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"email":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"display_name": &graphql.Field{Type: graphql.String},
	},
})

// postType GraphQL 帖子对象
var postType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Post",
	Fields: graphql.Fields{
		"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"title":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"content":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"image_path": &graphql.Field{Type: graphql.String},
		"created_at": &graphql.Field{Type: graphql.DateTime},
		"updated_at": &graphql.Field{Type: graphql.DateTime},
		"creator":    &graphql.Field{Type: userType},
	},
})

// authPayloadType 登录结果
var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"token":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"user_id": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

// postPageType 帖子分页结果
var postPageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "PostPage",
	Fields: graphql.Fields{
		"posts":         &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(postType))},
		"total_posts":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"has_next_page": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
	},
})

// NewSchema 组装 GraphQL schema，resolver 绑定在 r 上
func NewSchema(r *Resolver) (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: authPayloadType,
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.Login,
			},
			"getPosts": &graphql.Field{
				Type: postPageType,
				Args: graphql.FieldConfigArgument{
					"page": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
				},
				Resolve: r.GetPosts,
			},
			"getPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.GetPost,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"email":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"display_name": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.CreateUser,
			},
			"createPost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"title":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"image_path": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.CreatePost,
			},
			"updatePost": &graphql.Field{
				Type: postType,
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"title":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"content":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"image_path": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.UpdatePost,
			},
			"deletePost": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.DeletePost,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
