package lf

import "go.uber.org/zap"

const (
	FieldModule       = "module"
	FieldAssignmentID = "assignment_id"
	FieldClassroomID  = "classroom_id"
	FieldStudentLogin = "student_login"
	FieldRepo         = "repo"
	FieldRunID        = "run_id"
	FieldJobID        = "job_id"
	FieldBatchID      = "batch_id"
)

func Module(module string) zap.Field {
	return zap.String(FieldModule, module)
}

func AssignmentID(ID int64) zap.Field {
	return zap.Int64(FieldAssignmentID, ID)
}

func ClassroomID(ID int64) zap.Field {
	return zap.Int64(FieldClassroomID, ID)
}

func StudentLogin(login string) zap.Field {
	return zap.String(FieldStudentLogin, login)
}

func Repo(repo string) zap.Field {
	return zap.String(FieldRepo, repo)
}

func RunID(ID int64) zap.Field {
	return zap.Int64(FieldRunID, ID)
}

func JobID(ID int64) zap.Field {
	return zap.Int64(FieldJobID, ID)
}

func BatchID(ID string) zap.Field {
	return zap.String(FieldBatchID, ID)
}
