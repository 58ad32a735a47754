package validation

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"studyplanner/internal/core/domain"
)

const (
	taskStatusTag = "task_status"
	taskTypeTag   = "task_type"
	dueDateTag    = "due_date"
)

var registerOnce sync.Once

// RegisterBindings adds the custom tags used by the request DTOs to gin's validator.
func RegisterBindings() {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = engine.RegisterValidation(taskStatusTag, validateTaskStatus)
		_ = engine.RegisterValidation(taskTypeTag, validateTaskType)
		_ = engine.RegisterValidation(dueDateTag, validateDueDate)
	})
}

func validateTaskStatus(fl validator.FieldLevel) bool {
	return domain.TaskStatus(fl.Field().String()).Valid()
}

func validateTaskType(fl validator.FieldLevel) bool {
	return domain.TaskType(fl.Field().String()).Valid()
}

func validateDueDate(fl validator.FieldLevel) bool {
	_, err := ParseDueDate(fl.Field().String(), time.UTC)
	return err == nil
}
