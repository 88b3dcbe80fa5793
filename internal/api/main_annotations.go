// @title           AI Tool Hub API
// @version         1.0
// @description     Directory of AI tools with user reviews and an AI news feed.
// @BasePath        /api
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and your access token.
package api
