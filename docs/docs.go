// Package docs holds the OpenAPI description served under /swagger.
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
        "/api/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Login",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.LoginRequest"
                        }
                    }
                ]
            }
        },
        "/api/logout": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Logout",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/session": {
            "get": {
                "tags": [
                    "auth"
                ],
                "summary": "Current session",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.SessionResponse"
                        }
                    }
                }
            }
        },
        "/api/leads": {
            "get": {
                "tags": [
                    "leads"
                ],
                "summary": "List leads",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                }
            },
            "post": {
                "tags": [
                    "leads"
                ],
                "summary": "Add to leads",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LeadInput"
                        }
                    }
                ]
            }
        },
        "/api/leads/{id}": {
            "patch": {
                "tags": [
                    "leads"
                ],
                "summary": "Update one of leads",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.LeadPatch"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "leads"
                ],
                "summary": "Delete one of leads",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    }
                ]
            },
            "get": {
                "tags": [
                    "leads"
                ],
                "summary": "Get a lead",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Lead ID"
                    }
                ]
            }
        },
        "/api/projects": {
            "get": {
                "tags": [
                    "projects"
                ],
                "summary": "List projects",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                }
            },
            "post": {
                "tags": [
                    "projects"
                ],
                "summary": "Add to projects",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ProjectInput"
                        }
                    }
                ]
            }
        },
        "/api/projects/{id}": {
            "patch": {
                "tags": [
                    "projects"
                ],
                "summary": "Update one of projects",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.ProjectPatch"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "projects"
                ],
                "summary": "Delete one of projects",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    }
                ]
            }
        },
        "/api/areas": {
            "get": {
                "tags": [
                    "areas"
                ],
                "summary": "List areas",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                }
            },
            "post": {
                "tags": [
                    "areas"
                ],
                "summary": "Add to areas",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AreaInput"
                        }
                    }
                ]
            }
        },
        "/api/areas/{id}": {
            "patch": {
                "tags": [
                    "areas"
                ],
                "summary": "Update one of areas",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.AreaPatch"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "areas"
                ],
                "summary": "Delete one of areas",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    }
                ]
            }
        },
        "/api/units": {
            "get": {
                "tags": [
                    "units"
                ],
                "summary": "List units",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "areaId",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "paymentMethod",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "minSize",
                        "in": "query",
                        "type": "number"
                    },
                    {
                        "name": "maxSize",
                        "in": "query",
                        "type": "number"
                    }
                ]
            },
            "post": {
                "tags": [
                    "units"
                ],
                "summary": "Add to units",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UnitInput"
                        }
                    }
                ]
            }
        },
        "/api/units/{id}": {
            "patch": {
                "tags": [
                    "units"
                ],
                "summary": "Update one of units",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    },
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/models.UnitPatch"
                        }
                    }
                ]
            },
            "delete": {
                "tags": [
                    "units"
                ],
                "summary": "Delete one of units",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    }
                ]
            }
        },
        "/api/leads/{id}/whatsapp": {
            "get": {
                "tags": [
                    "leads"
                ],
                "summary": "WhatsApp deep link",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Lead ID"
                    }
                ]
            }
        },
        "/api/areas/{id}/projects": {
            "get": {
                "tags": [
                    "projects"
                ],
                "summary": "Projects of an area",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Area ID"
                    }
                ]
            }
        },
        "/api/insights/areas": {
            "get": {
                "tags": [
                    "insights"
                ],
                "summary": "Per-area counts",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                }
            }
        },
        "/api/insights/dashboard": {
            "get": {
                "tags": [
                    "insights"
                ],
                "summary": "Dashboard stats",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                }
            }
        },
        "/api/insights/dangling": {
            "get": {
                "tags": [
                    "insights"
                ],
                "summary": "Stale references",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                }
            }
        },
        "/api/options": {
            "get": {
                "tags": [
                    "settings"
                ],
                "summary": "Active form options",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                }
            }
        },
        "/api/settings/lead-sources": {
            "get": {
                "tags": [
                    "settings"
                ],
                "summary": "List lead-sources",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                }
            },
            "post": {
                "tags": [
                    "settings"
                ],
                "summary": "Add to lead-sources",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/settings.OptionInput"
                        }
                    }
                ]
            }
        },
        "/api/settings/lead-sources/{id}": {
            "delete": {
                "tags": [
                    "settings"
                ],
                "summary": "Remove from lead-sources",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    }
                ]
            }
        },
        "/api/settings/unit-types": {
            "get": {
                "tags": [
                    "settings"
                ],
                "summary": "List unit-types",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                }
            },
            "post": {
                "tags": [
                    "settings"
                ],
                "summary": "Add to unit-types",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/settings.OptionInput"
                        }
                    }
                ]
            }
        },
        "/api/settings/unit-types/{id}": {
            "delete": {
                "tags": [
                    "settings"
                ],
                "summary": "Remove from unit-types",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    }
                ]
            }
        },
        "/api/settings/sales-reps": {
            "get": {
                "tags": [
                    "settings"
                ],
                "summary": "List sales-reps",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                }
            },
            "post": {
                "tags": [
                    "settings"
                ],
                "summary": "Add to sales-reps",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/settings.SalesRepInput"
                        }
                    }
                ]
            }
        },
        "/api/settings/sales-reps/{id}": {
            "delete": {
                "tags": [
                    "settings"
                ],
                "summary": "Remove from sales-reps",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "ID"
                    }
                ]
            }
        },
        "/api/settings/sales-reps/{id}/toggle": {
            "post": {
                "tags": [
                    "settings"
                ],
                "summary": "Toggle a sales rep",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    },
                    "403": {
                        "description": "Admin role required"
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "description": "Sales rep ID"
                    }
                ]
            }
        },
        "/api/language": {
            "get": {
                "tags": [
                    "language"
                ],
                "summary": "Current UI language",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "put": {
                "tags": [
                    "language"
                ],
                "summary": "Switch UI language",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/language.LanguageRequest"
                        }
                    }
                ]
            }
        },
        "/api/language/translate/{key}": {
            "get": {
                "tags": [
                    "language"
                ],
                "summary": "Translate a UI key",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                },
                "parameters": [
                    {
                        "name": "key",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/api/export/leads.xlsx": {
            "get": {
                "tags": [
                    "export"
                ],
                "summary": "Export leads",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ]
            }
        },
        "/api/export/units.xlsx": {
            "get": {
                "tags": [
                    "export"
                ],
                "summary": "Export units",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "401": {
                        "description": "Login required"
                    }
                },
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ]
            }
        },
        "/health": {
            "get": {
                "tags": [
                    "system"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "auth.SessionResponse": {
            "type": "object",
            "properties": {
                "authenticated": {
                    "type": "boolean"
                },
                "canAccessSettings": {
                    "type": "boolean"
                },
                "role": {
                    "type": "string"
                },
                "user": {}
            }
        },
        "auth.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            }
        },
        "language.LanguageRequest": {
            "type": "object",
            "properties": {
                "language": {
                    "type": "string"
                }
            }
        },
        "settings.OptionInput": {
            "type": "object",
            "properties": {
                "label": {
                    "type": "string"
                }
            }
        },
        "settings.SalesRepInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                }
            }
        },
        "models.AreaInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                }
            }
        },
        "models.AreaPatch": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "city": {
                    "type": "string"
                }
            }
        },
        "models.ProjectInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "developer": {
                    "type": "string"
                },
                "areaId": {
                    "type": "string"
                },
                "totalUnits": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "deliveryDate": {
                    "type": "string"
                },
                "installmentPlans": {
                    "type": "string"
                }
            }
        },
        "models.ProjectPatch": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "developer": {
                    "type": "string"
                },
                "areaId": {
                    "type": "string"
                },
                "areaName": {
                    "type": "string"
                },
                "totalUnits": {
                    "type": "integer"
                },
                "status": {
                    "type": "string"
                },
                "deliveryDate": {
                    "type": "string"
                },
                "installmentPlans": {
                    "type": "string"
                }
            }
        },
        "models.UnitInput": {
            "type": "object",
            "properties": {
                "projectId": {
                    "type": "string"
                },
                "unitNumber": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "size": {
                    "type": "number"
                },
                "price": {
                    "type": "number"
                },
                "ownerName": {
                    "type": "string"
                },
                "ownerPhone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "finishingStatus": {
                    "type": "string"
                },
                "deliveryDate": {
                    "type": "string"
                },
                "paymentMethod": {
                    "type": "string"
                },
                "installmentPlans": {
                    "type": "string"
                },
                "photos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.UnitPatch": {
            "type": "object",
            "properties": {
                "projectId": {
                    "type": "string"
                },
                "unitNumber": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "size": {
                    "type": "number"
                },
                "price": {
                    "type": "number"
                },
                "ownerName": {
                    "type": "string"
                },
                "ownerPhone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "finishingStatus": {
                    "type": "string"
                },
                "deliveryDate": {
                    "type": "string"
                },
                "paymentMethod": {
                    "type": "string"
                },
                "installmentPlans": {
                    "type": "string"
                },
                "photos": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "models.LeadInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "followUp": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "areaId": {
                    "type": "string"
                },
                "projectId": {
                    "type": "string"
                },
                "assignedTo": {
                    "type": "string"
                },
                "preferredPaymentMethod": {
                    "type": "string"
                },
                "budget": {
                    "type": "number"
                }
            }
        },
        "models.LeadPatch": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "followUp": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "areaId": {
                    "type": "string"
                },
                "areaName": {
                    "type": "string"
                },
                "projectId": {
                    "type": "string"
                },
                "projectName": {
                    "type": "string"
                },
                "assignedTo": {
                    "type": "string"
                },
                "assignedToName": {
                    "type": "string"
                },
                "preferredPaymentMethod": {
                    "type": "string"
                },
                "budget": {
                    "type": "number"
                }
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
	Title:            "Estate CRM API",
	Description:      "Leads, projects, areas and units for a real-estate sales team.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
