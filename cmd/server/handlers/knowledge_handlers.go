package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"today-knowledge/cmd/server/dto"
	"today-knowledge/cmd/server/services"
)

// RegisterKnowledgeHandler godoc
// @Summary      1분 지식 생성
// @Description  주제와 관점, 샘플링 파라미터로 흥미로운 지식 하나를 생성한다. 생성 실패 시에도 200 과 함께 대체 결과를 돌려준다.
// @Tags         knowledge
// @Accept       json
// @Produce      json
// @Param        body  body      dto.KnowledgeRequestDTO  true  "knowledge request"
// @Success      200   {object}  dto.KnowledgeResponseDTO
// @Failure      400   {object}  dto.ErrorResponseDTO
// @Failure      429   {object}  dto.ErrorResponseDTO  "일일 생성 한도 소진"
// @Failure      503   {object}  dto.ErrorResponseDTO
// @Router       /register [post]
// @Router       /api/v1/knowledge [post]
func RegisterKnowledgeHandler(svc *services.KnowledgeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.KnowledgeRequestDTO
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Topic) == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: "invalid_request"})
			return
		}

		result, kerr := svc.Generate(c.Request.Context(), req.ToModel())
		if kerr != nil {
			c.JSON(kerr.StatusCode, dto.ErrorResponseDTO{Error: kerr.ErrorCode})
			return
		}

		c.JSON(http.StatusOK, dto.NewKnowledgeResponseDTO(result))
	}
}

// HealthHandler godoc
// @Summary      헬스 체크
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok"})
	}
}
