package awsx

import (
	"errors"

	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

// ErrorFields returns log fields describing an AWS API error. Non API errors
// only carry the error itself.
func ErrorFields(err error) logrus.Fields {
	fields := logrus.Fields{}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		fields["aws_error_code"] = apiErr.ErrorCode()
		fields["aws_error_fault"] = apiErr.ErrorFault().String()
	}
	return fields
}

// ErrorCode returns the service error code, or "" when err is not an API error.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}
