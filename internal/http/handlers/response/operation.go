package response

type OperationName string

const (
	OperationDelete               OperationName = "DELETE"
	OperationRequestPasswordReset OperationName = "REQUEST_PASSWORD_RESET"
	OperationPasswordReset        OperationName = "PASSWORD_RESET"
)

type OperationResult string

const (
	OperationSuccess OperationResult = "SUCCESS"
	OperationError   OperationResult = "ERROR"
)

type OperationStatus struct {
	OperationName   OperationName   `json:"operation_name"`
	OperationResult OperationResult `json:"operation_result"`
}

func NewOperationStatus(name OperationName, success bool) OperationStatus {
	status := OperationStatus{OperationName: name, OperationResult: OperationError}
	if success {
		status.OperationResult = OperationSuccess
	}
	return status
}
