package validator

import (
	"errors"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"file-uploader/internal/domain"
	"file-uploader/internal/interface/web/dto/auth"
)

const (
	MaxFolderNameLength = 255
	MaxUsernameLength   = 64
	minPasswordLen      = 6
	maxPasswordLen      = 72 // bcrypt safe
)

// field is validated in declaration order so the first failure is stable.
type field struct {
	name  string
	value string
	rules []validation.Rule
}

func firstError(fields ...field) error {
	for _, f := range fields {
		if err := validation.Validate(f.value, f.rules...); err != nil {
			var ve validation.Error
			if errors.As(err, &ve) {
				return domain.Invalid(f.name, ve.Error())
			}
			return err
		}
	}

	return nil
}

// ValidateFolderName returns the trimmed name.
func ValidateFolderName(name string) (string, error) {
	name = strings.TrimSpace(name)

	return name, firstError(field{
		name:  "name",
		value: name,
		rules: []validation.Rule{
			validation.Required.Error("Folder name is required"),
			validation.RuneLength(1, MaxFolderNameLength).Error("Folder name must be at most 255 characters"),
		},
	})
}

// ValidateSignup normalizes req in place.
func ValidateSignup(req *auth.SignupRequest) error {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	return firstError(
		field{
			name:  "username",
			value: req.Username,
			rules: []validation.Rule{
				validation.Required.Error("Username is required"),
				validation.RuneLength(1, MaxUsernameLength).Error("Username must be at most 64 characters"),
			},
		},
		field{
			name:  "email",
			value: req.Email,
			rules: []validation.Rule{
				validation.Required.Error("Email is required"),
				is.EmailFormat.Error("Email is not valid"),
			},
		},
		field{
			name:  "password",
			value: req.Password,
			rules: []validation.Rule{
				validation.Required.Error("Password is required"),
				validation.Length(minPasswordLen, maxPasswordLen).Error("Password must be 6 to 72 characters"),
			},
		},
		field{
			name:  "confirmPassword",
			value: req.ConfirmPassword,
			rules: []validation.Rule{
				validation.Required.Error("Please confirm your password"),
				validation.In(req.Password).Error("Passwords do not match"),
			},
		},
	)
}

func ValidateLogin(req *auth.LoginRequest) error {
	req.Username = strings.TrimSpace(req.Username)

	return firstError(
		field{
			name:  "username",
			value: req.Username,
			rules: []validation.Rule{validation.Required.Error("Username is required")},
		},
		field{
			name:  "password",
			value: req.Password,
			rules: []validation.Rule{validation.Required.Error("Password is required")},
		},
	)
}

// ParseID accepts positive decimal ids only.
func ParseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
