// Package docs registers the Swagger document served at /swagger. Keep it in
// step with the handler annotations.
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
        "/admin/question/addQuestions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Add a question",
                "parameters": [
                    {
                        "description": "Question data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.QuestionRequest"}
                    }
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.CreatedResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/allQuestions": {
            "get": {
                "description": "Every question in the bank, right answers included",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List all questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}}
                }
            }
        },
        "/admin/question/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/categories/summary": {
            "get": {
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Count questions per category",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.CategoryCount"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/category/{category}": {
            "get": {
                "description": "Category matching is exact and case-sensitive",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions in a category",
                "parameters": [
                    {"type": "string", "description": "Category", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/delete/{id}": {
            "delete": {
                "description": "Quizzes already composed keep their copy of the question",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Delete a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/export": {
            "get": {
                "description": "JSON grouped by category, or CSV with the right answer given as its option number",
                "produces": ["application/json", "text/csv"],
                "tags": ["questions"],
                "summary": "Export the question bank",
                "parameters": [
                    {"type": "string", "description": "Only this category", "name": "category", "in": "query"},
                    {"type": "string", "default": "json", "description": "json or csv", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.ExportData"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/id/{id}": {
            "get": {
                "description": "Responds with null when the question does not exist",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Get a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/import": {
            "post": {
                "description": "Accepts a .csv or .json file in the export format. Nothing is stored if any row is invalid.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Import questions",
                "parameters": [
                    {"type": "file", "description": "Export file", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.ImportResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/question/update/{id}": {
            "put": {
                "description": "Replaces every field; the id in the body is ignored",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Update a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Question data",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/handlers.QuestionRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/quiz/create": {
            "post": {
                "description": "Samples up to numQ random questions from category. A smaller category yields a shorter quiz.",
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Create a quiz",
                "parameters": [
                    {"type": "string", "description": "Category", "name": "category", "in": "query", "required": true},
                    {"type": "integer", "description": "Number of questions", "name": "numQ", "in": "query", "required": true},
                    {"type": "string", "description": "Quiz title", "name": "title", "in": "query", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handlers.CreateQuizResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/quiz/delete/all": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Delete every quiz",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/quiz/delete/{id}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Delete a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/admin/quiz/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Get a quiz with answers",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Quiz"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Pings the database",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handlers.HealthResponse"}}
                }
            }
        },
        "/user/question/allQuestions": {
            "get": {
                "description": "Every question in the bank, right answers included",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List all questions",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}}
                }
            }
        },
        "/user/question/category/{category}": {
            "get": {
                "description": "Category matching is exact and case-sensitive",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "List questions in a category",
                "parameters": [
                    {"type": "string", "description": "Category", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/user/question/id/{id}": {
            "get": {
                "description": "Responds with null when the question does not exist",
                "produces": ["application/json"],
                "tags": ["questions"],
                "summary": "Get a question",
                "parameters": [
                    {"type": "integer", "description": "Question ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Question"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/user/quiz/all": {
            "get": {
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "List all quizzes",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Quiz"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Quiz"}}}
                }
            }
        },
        "/user/quiz/get/{id}": {
            "get": {
                "description": "Quiz questions in order, without right answers",
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Take a quiz",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.QuestionView"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/user/quiz/submit/{id}": {
            "post": {
                "description": "The i-th response is graded against the i-th question; responds with the number of right answers",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["quizzes"],
                "summary": "Submit answers",
                "parameters": [
                    {"type": "integer", "description": "Quiz ID", "name": "id", "in": "path", "required": true},
                    {
                        "description": "Responses in question order",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Response"}}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "integer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/ws/admin/{topic}": {
            "get": {
                "description": "Topics: questions, quizzes",
                "tags": ["websocket"],
                "summary": "WebSocket feed of question bank and quiz events",
                "parameters": [
                    {"type": "string", "description": "Topic", "name": "topic", "in": "path", "required": true}
                ],
                "responses": {}
            }
        }
    },
    "definitions": {
        "handlers.CreateQuizResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "message": {"type": "string", "example": "quiz created successfully"},
                "question_count": {"type": "integer", "example": 10}
            }
        },
        "handlers.CreatedResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "message": {"type": "string", "example": "question added successfully"}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "something went wrong"}
            }
        },
        "handlers.ExportCategory": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/handlers.ExportQuestion"}}
            }
        },
        "handlers.ExportData": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"$ref": "#/definitions/handlers.ExportCategory"}}
            }
        },
        "handlers.ExportQuestion": {
            "type": "object",
            "properties": {
                "difficultylevel": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}},
                "question_title": {"type": "string"},
                "right_answer": {"type": "string"}
            }
        },
        "handlers.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"}
            }
        },
        "handlers.ImportResponse": {
            "type": "object",
            "properties": {
                "imported_questions": {"type": "integer", "example": 12}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "operation successful"}
            }
        },
        "handlers.QuestionRequest": {
            "type": "object",
            "required": ["category", "option1", "option2", "option3", "option4", "question_title", "right_answer"],
            "properties": {
                "category": {"type": "string", "maxLength": 100, "example": "Java"},
                "difficultylevel": {"type": "string", "maxLength": 50, "example": "Easy"},
                "option1": {"type": "string", "maxLength": 500, "example": "public static void main(String[] args)"},
                "option2": {"type": "string", "maxLength": 500, "example": "public void main(String[] args)"},
                "option3": {"type": "string", "maxLength": 500, "example": "static void main(String[] args)"},
                "option4": {"type": "string", "maxLength": 500, "example": "void main(String[] args)"},
                "question_title": {"type": "string", "example": "What is the main method in Java?"},
                "right_answer": {"type": "string", "example": "public static void main(String[] args)"}
            }
        },
        "models.Question": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "created_at": {"type": "string"},
                "difficultylevel": {"type": "string"},
                "id": {"type": "integer"},
                "option1": {"type": "string"},
                "option2": {"type": "string"},
                "option3": {"type": "string"},
                "option4": {"type": "string"},
                "question_title": {"type": "string"},
                "right_answer": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.QuestionView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "option1": {"type": "string"},
                "option2": {"type": "string"},
                "option3": {"type": "string"},
                "option4": {"type": "string"},
                "question_title": {"type": "string"}
            }
        },
        "models.Quiz": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "integer"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.QuizQuestion"}},
                "title": {"type": "string"}
            }
        },
        "models.QuizQuestion": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "difficultylevel": {"type": "string"},
                "id": {"type": "integer"},
                "option1": {"type": "string"},
                "option2": {"type": "string"},
                "option3": {"type": "string"},
                "option4": {"type": "string"},
                "position": {"type": "integer"},
                "question_title": {"type": "string"},
                "right_answer": {"type": "string"}
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "response": {"type": "string"}
            }
        },
        "services.CategoryCount": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "count": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Quiz Bank API",
	Description:      "Question bank, quiz composition and scoring",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
