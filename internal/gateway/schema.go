// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ContentOne Contributors

package gateway

import (
	"github.com/graphql-go/graphql"
	"github.com/samber/oops"
)

var (
	userType = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"firstName": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	fieldErrorType = graphql.NewObject(graphql.ObjectConfig{
		Name: "FieldError",
		Fields: graphql.Fields{
			"field":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	fieldErrorList = graphql.NewList(graphql.NewNonNull(fieldErrorType))

	userResponseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "UserResponse",
		Fields: graphql.Fields{
			"user":   &graphql.Field{Type: userType},
			"errors": &graphql.Field{Type: fieldErrorList},
		},
	})

	categoryType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.Fields{
			"id":          &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"name":        &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"description": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"userId":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	feedType = graphql.NewObject(graphql.ObjectConfig{
		Name: "Feed",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"feedUrl":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"categoryId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	categoryResponseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "CategoryResponse",
		Fields: graphql.Fields{
			"category": &graphql.Field{Type: categoryType},
			"errors":   &graphql.Field{Type: fieldErrorList},
		},
	})

	categoriesResponseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "CategoriesResponse",
		Fields: graphql.Fields{
			"categories": &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(categoryType))},
		},
	})

	deleteResponseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "DeleteResponse",
		Fields: graphql.Fields{
			"result":  &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	noDataErrorType = graphql.NewObject(graphql.ObjectConfig{
		Name: "NoDataError",
		Fields: graphql.Fields{
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	feedsResponseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "FeedsResponse",
		Fields: graphql.Fields{
			"category": &graphql.Field{Type: categoryType},
			"feeds":    &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(feedType))},
			"errors":   &graphql.Field{Type: fieldErrorList},
			"error":    &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(noDataErrorType))},
		},
	})

	feedResponseType = graphql.NewObject(graphql.ObjectConfig{
		Name: "FeedResponse",
		Fields: graphql.Fields{
			"feed":   &graphql.Field{Type: feedType},
			"errors": &graphql.Field{Type: fieldErrorList},
		},
	})

	userInputType = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "UserInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"firstName": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"email":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"password":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})
)

func nonNullArg(t graphql.Type) *graphql.ArgumentConfig {
	return &graphql.ArgumentConfig{Type: graphql.NewNonNull(t)}
}

// newSchema builds the API schema with r's resolvers.
func newSchema(r *resolvers) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{Type: userType, Resolve: r.me},
			"readCategory": &graphql.Field{
				Type:    categoryType,
				Args:    graphql.FieldConfigArgument{"id": nonNullArg(graphql.Int)},
				Resolve: r.readCategory,
			},
			"readCategories": &graphql.Field{Type: categoriesResponseType, Resolve: r.readCategories},
			"readFeed": &graphql.Field{
				Type:    feedType,
				Args:    graphql.FieldConfigArgument{"id": nonNullArg(graphql.Int)},
				Resolve: r.readFeed,
			},
			"readFeeds": &graphql.Field{
				Type:    feedsResponseType,
				Args:    graphql.FieldConfigArgument{"categoryId": nonNullArg(graphql.Int)},
				Resolve: r.readFeeds,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type:    userResponseType,
				Args:    graphql.FieldConfigArgument{"options": nonNullArg(userInputType)},
				Resolve: r.register,
			},
			"login": &graphql.Field{
				Type:    userResponseType,
				Args:    graphql.FieldConfigArgument{"options": nonNullArg(userInputType)},
				Resolve: r.login,
			},
			"logout": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Resolve: r.logout,
			},
			"forgotPassword": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    graphql.FieldConfigArgument{"email": nonNullArg(graphql.String)},
				Resolve: r.forgotPassword,
			},
			"updatePassword": &graphql.Field{
				Type: userResponseType,
				Args: graphql.FieldConfigArgument{
					"token":    nonNullArg(graphql.String),
					"password": nonNullArg(graphql.String),
				},
				Resolve: r.updatePassword,
			},
			"createCategory": &graphql.Field{
				Type: categoryResponseType,
				Args: graphql.FieldConfigArgument{
					"name":        nonNullArg(graphql.String),
					"description": nonNullArg(graphql.String),
				},
				Resolve: r.createCategory,
			},
			"updateCategory": &graphql.Field{
				Type: categoryResponseType,
				Args: graphql.FieldConfigArgument{
					"id":          nonNullArg(graphql.Int),
					"name":        nonNullArg(graphql.String),
					"description": nonNullArg(graphql.String),
				},
				Resolve: r.updateCategory,
			},
			"deleteCategory": &graphql.Field{
				Type:    deleteResponseType,
				Args:    graphql.FieldConfigArgument{"id": nonNullArg(graphql.Int)},
				Resolve: r.deleteCategory,
			},
			"createFeed": &graphql.Field{
				Type: feedResponseType,
				Args: graphql.FieldConfigArgument{
					"name":       nonNullArg(graphql.String),
					"feedUrl":    nonNullArg(graphql.String),
					"categoryId": nonNullArg(graphql.Int),
				},
				Resolve: r.createFeed,
			},
			"updateFeed": &graphql.Field{
				Type: feedResponseType,
				Args: graphql.FieldConfigArgument{
					"id":      nonNullArg(graphql.Int),
					"name":    &graphql.ArgumentConfig{Type: graphql.String},
					"feedUrl": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.updateFeed,
			},
			"deleteFeed": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Boolean),
				Args:    graphql.FieldConfigArgument{"id": nonNullArg(graphql.Int)},
				Resolve: r.deleteFeed,
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
	if err != nil {
		return graphql.Schema{}, oops.Code("SCHEMA_INVALID").Wrap(err)
	}
	return schema, nil
}
