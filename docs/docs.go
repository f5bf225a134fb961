// Package docs holds the OpenAPI description of the HTTP API served at
// /api/swagger. Keep it in step with the routes in internal/server.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/register": {
			"post": {
				"description": "Create an account and start a session",
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Register",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Registration",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"properties": {
								"username": {
									"type": "string"
								},
								"password": {
									"type": "string"
								},
								"fullName": {
									"type": "string"
								},
								"email": {
									"type": "string"
								}
							}
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Validation error or taken username",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/login": {
			"post": {
				"description": "Start a session for an existing account",
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Log in",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"properties": {
								"username": {
									"type": "string"
								},
								"password": {
									"type": "string"
								}
							}
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Authentication failed",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/logout": {
			"post": {
				"description": "Revoke the current session and clear its cookie",
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Log out",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"message": {
									"type": "string"
								}
							}
						}
					}
				}
			}
		},
		"/api/user": {
			"get": {
				"description": "Return the user bound to the session cookie",
				"produces": [
					"application/json"
				],
				"tags": [
					"auth"
				],
				"summary": "Current user",
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"401": {
						"description": "Authentication required",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/posts": {
			"get": {
				"description": "Global feed, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "List posts",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Post"
							}
						}
					}
				}
			},
			"post": {
				"description": "Upload an image, video or audio post",
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "Create post",
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "file",
						"description": "image",
						"name": "image",
						"in": "formData",
						"required": false
					},
					{
						"type": "file",
						"description": "video",
						"name": "video",
						"in": "formData",
						"required": false
					},
					{
						"type": "file",
						"description": "audio",
						"name": "audio",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "caption",
						"name": "caption",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "location",
						"name": "location",
						"in": "formData",
						"required": false
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Post"
						}
					},
					"400": {
						"description": "No media file uploaded",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"401": {
						"description": "Authentication required",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/posts/{id}/like": {
			"post": {
				"description": "Like or unlike a post",
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "Toggle like",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"liked": {
									"type": "boolean"
								}
							}
						}
					},
					"404": {
						"description": "Post not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/posts/{id}/comments": {
			"get": {
				"description": "Comments on a post, oldest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "List comments",
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Comment"
							}
						}
					},
					"404": {
						"description": "Post not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"description": "Comment on a post",
				"produces": [
					"application/json"
				],
				"tags": [
					"posts"
				],
				"summary": "Add comment",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "Post ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Comment",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"properties": {
								"content": {
									"type": "string"
								}
							}
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Comment"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "Post not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/all": {
			"get": {
				"description": "Every user, oldest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "List users",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					}
				}
			}
		},
		"/api/users/search/{query}": {
			"get": {
				"description": "Case-insensitive substring match on username or full name",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Search users",
				"parameters": [
					{
						"type": "string",
						"description": "query",
						"name": "query",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					},
					"400": {
						"description": "Query too long",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/{usernameOrId}": {
			"get": {
				"description": "Look a user up by numeric id or username",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Get user",
				"parameters": [
					{
						"type": "string",
						"description": "usernameOrId",
						"name": "usernameOrId",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/{id}": {
			"put": {
				"description": "Partially update your own profile",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Update profile",
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "integer",
						"description": "User ID",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "username",
						"name": "username",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "fullName",
						"name": "fullName",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "email",
						"name": "email",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "bio",
						"name": "bio",
						"in": "formData",
						"required": false
					},
					{
						"type": "file",
						"description": "profilePicture",
						"name": "profilePicture",
						"in": "formData",
						"required": false
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.User"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"403": {
						"description": "Not your profile",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/{username}/posts": {
			"get": {
				"description": "Posts by one user, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "User posts",
				"parameters": [
					{
						"type": "string",
						"description": "username",
						"name": "username",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Post"
							}
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/{username}/stories": {
			"get": {
				"description": "Unexpired stories by one user",
				"produces": [
					"application/json"
				],
				"tags": [
					"stories"
				],
				"summary": "User stories",
				"parameters": [
					{
						"type": "string",
						"description": "username",
						"name": "username",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Story"
							}
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/{username}/followers": {
			"get": {
				"description": "Users following this user",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Followers",
				"parameters": [
					{
						"type": "string",
						"description": "username",
						"name": "username",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/{username}/following": {
			"get": {
				"description": "Users this user follows",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Following",
				"parameters": [
					{
						"type": "string",
						"description": "username",
						"name": "username",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.User"
							}
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/users/{username}/follow": {
			"post": {
				"description": "Follow or unfollow a user",
				"produces": [
					"application/json"
				],
				"tags": [
					"users"
				],
				"summary": "Toggle follow",
				"parameters": [
					{
						"type": "string",
						"description": "username",
						"name": "username",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"following": {
									"type": "boolean"
								}
							}
						}
					},
					"400": {
						"description": "Cannot follow yourself",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/stories": {
			"get": {
				"description": "Unexpired stories, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"stories"
				],
				"summary": "Story tray",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Story"
							}
						}
					}
				}
			},
			"post": {
				"description": "Upload a story image visible for 24 hours",
				"produces": [
					"application/json"
				],
				"tags": [
					"stories"
				],
				"summary": "Create story",
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "file",
						"description": "image",
						"name": "image",
						"in": "formData",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Story"
						}
					},
					"400": {
						"description": "No image file uploaded",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/reels": {
			"get": {
				"description": "Reels, newest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"reels"
				],
				"summary": "List reels",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Reel"
							}
						}
					}
				}
			},
			"post": {
				"description": "Upload a reel video with optional thumbnail",
				"produces": [
					"application/json"
				],
				"tags": [
					"reels"
				],
				"summary": "Create reel",
				"consumes": [
					"multipart/form-data"
				],
				"parameters": [
					{
						"type": "file",
						"description": "video",
						"name": "video",
						"in": "formData",
						"required": true
					},
					{
						"type": "file",
						"description": "thumbnail",
						"name": "thumbnail",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "caption",
						"name": "caption",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "filter",
						"name": "filter",
						"in": "formData",
						"required": false
					},
					{
						"type": "string",
						"description": "audioId",
						"name": "audioId",
						"in": "formData",
						"required": false
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Reel"
						}
					},
					"400": {
						"description": "No video file uploaded",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/reels/{id}/like": {
			"post": {
				"description": "Like or unlike a reel",
				"produces": [
					"application/json"
				],
				"tags": [
					"reels"
				],
				"summary": "Toggle reel like",
				"parameters": [
					{
						"type": "integer",
						"description": "Reel ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"liked": {
									"type": "boolean"
								}
							}
						}
					},
					"404": {
						"description": "Reel not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/reels/{id}/view": {
			"post": {
				"description": "Increment a reel's view count",
				"produces": [
					"application/json"
				],
				"tags": [
					"reels"
				],
				"summary": "Count view",
				"parameters": [
					{
						"type": "integer",
						"description": "Reel ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"properties": {
								"views": {
									"type": "integer"
								}
							}
						}
					},
					"404": {
						"description": "Reel not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/messages": {
			"post": {
				"description": "Send a direct message",
				"produces": [
					"application/json"
				],
				"tags": [
					"messages"
				],
				"summary": "Send message",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"description": "Message",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"type": "object",
							"properties": {
								"receiverId": {
									"type": "integer"
								},
								"content": {
									"type": "string"
								}
							}
						}
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.Message"
						}
					},
					"400": {
						"description": "Validation error",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "Receiver not found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/messages/{userId}": {
			"get": {
				"description": "Messages between you and another user, oldest first",
				"produces": [
					"application/json"
				],
				"tags": [
					"messages"
				],
				"summary": "Conversation",
				"parameters": [
					{
						"type": "integer",
						"description": "Other user ID",
						"name": "userId",
						"in": "path",
						"required": true
					}
				],
				"security": [
					{
						"SessionCookie": []
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Message"
							}
						}
					}
				}
			}
		},
		"/api/seed/posts": {
			"post": {
				"description": "Load sample users, posts and reels into a sparse store",
				"produces": [
					"application/json"
				],
				"tags": [
					"dev"
				],
				"summary": "Seed sample posts",
				"responses": {
					"201": {
						"description": "Seeded",
						"schema": {
							"type": "object",
							"properties": {
								"message": {
									"type": "string"
								},
								"posts": {
									"type": "array",
									"items": {
										"$ref": "#/definitions/models.Post"
									}
								}
							}
						}
					},
					"200": {
						"description": "Already populated",
						"schema": {
							"type": "object",
							"properties": {
								"message": {
									"type": "string"
								},
								"existingCount": {
									"type": "integer"
								}
							}
						}
					},
					"404": {
						"description": "Unavailable"
					}
				}
			}
		},
		"/api/feature-flags": {
			"get": {
				"description": "Configured and evaluated feature flags",
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Feature flags",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/health/live": {
			"get": {
				"description": "Process is up",
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Liveness",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		},
		"/health/ready": {
			"get": {
				"description": "Store and Redis reachability",
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Readiness",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object"
						}
					},
					"503": {
						"description": "Unhealthy",
						"schema": {
							"type": "object"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"models.User": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"fullName": {
					"type": "string"
				},
				"bio": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"profilePicture": {
					"type": "string"
				},
				"isVerified": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Post": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				},
				"caption": {
					"type": "string"
				},
				"imageUrl": {
					"type": "string"
				},
				"mediaType": {
					"type": "string",
					"enum": [
						"image",
						"video",
						"audio"
					]
				},
				"location": {
					"type": "string"
				},
				"likes": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Comment": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"postId": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				},
				"content": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Story": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				},
				"imageUrl": {
					"type": "string"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				},
				"expiresAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Reel": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"userId": {
					"type": "integer"
				},
				"user": {
					"$ref": "#/definitions/models.User"
				},
				"videoUrl": {
					"type": "string"
				},
				"thumbnail": {
					"type": "string"
				},
				"caption": {
					"type": "string"
				},
				"filter": {
					"type": "string"
				},
				"audioTrack": {
					"type": "string"
				},
				"likes": {
					"type": "integer"
				},
				"views": {
					"type": "integer"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.Message": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"senderId": {
					"type": "integer"
				},
				"receiverId": {
					"type": "integer"
				},
				"content": {
					"type": "string"
				},
				"isRead": {
					"type": "boolean"
				},
				"createdAt": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"models.FieldError": {
			"type": "object",
			"properties": {
				"field": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"models.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"code": {
					"type": "string"
				},
				"errors": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.FieldError"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"SessionCookie": {
			"type": "apiKey",
			"name": "pixelgram.sid",
			"in": "cookie"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pixelgram API",
	Description:      "Photo and video sharing backend with session-cookie auth and a realtime search channel.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
