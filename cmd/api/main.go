package main

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "grantflow-backend/internal/adapter/http"
	"grantflow-backend/internal/adapter/middleware"
	"grantflow-backend/internal/adapter/repository/mysql"
	"grantflow-backend/internal/config"
	"grantflow-backend/internal/domain/notice"
	"grantflow-backend/internal/domain/orgunit"
	"grantflow-backend/internal/domain/project"
	"grantflow-backend/internal/domain/submission"
	"grantflow-backend/internal/infrastructure/cache"
	"grantflow-backend/internal/infrastructure/db"
	"grantflow-backend/internal/logging"
	budgetUC "grantflow-backend/internal/usecase/budget"
	decisionUC "grantflow-backend/internal/usecase/decision"
	forwardingUC "grantflow-backend/internal/usecase/forwarding"
	noticeUC "grantflow-backend/internal/usecase/notice"
	projectUC "grantflow-backend/internal/usecase/project"
	reviewUC "grantflow-backend/internal/usecase/review"
	submissionUC "grantflow-backend/internal/usecase/submission"
)

func main() {
	log := logging.GetLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := gdb.AutoMigrate(
		&orgunit.OrgUnit{}, &orgunit.Membership{},
		&notice.Notice{}, &notice.Target{}, &notice.Forward{},
		&submission.Submission{}, &submission.Version{}, &submission.Review{},
		&submission.Comment{}, &submission.Decision{}, &submission.DirectorApproval{},
		&submission.Forward{},
		&project.Project{}, &project.Budget{}, &project.Task{},
	); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	orgUnits := mysql.NewOrgUnitRepository(gdb)
	notices := mysql.NewNoticeRepository(gdb)
	submissions := mysql.NewSubmissionRepository(gdb)
	projects := mysql.NewProjectRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	noticeH := httpadp.NewNoticeHandler(noticeUC.NewUsecase(notices, orgUnits, uow))
	forwardH := httpadp.NewForwardingHandler(forwardingUC.NewUsecase(notices, orgUnits, submissions, uow))
	submitH := httpadp.NewSubmissionHandler(submissionUC.NewUsecase(notices, orgUnits, submissions, uow))
	reviewH := httpadp.NewReviewHandler(reviewUC.NewUsecase(submissions, notices, uow))
	decisionH := httpadp.NewDecisionHandler(decisionUC.NewUsecase(submissions, uow))
	projectH := httpadp.NewProjectHandler(projectUC.NewUsecase(projects), budgetUC.NewUsecase(projects, uow))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	e.GET("/health", h.Health)

	e.POST("/notices", noticeH.Publish)
	e.GET("/notices", noticeH.ListVisible)
	e.GET("/notices/:notice_id", noticeH.Get)
	e.PUT("/notices/:notice_id", noticeH.Update)
	e.DELETE("/notices/:notice_id", noticeH.Delete)
	e.POST("/notices/:notice_id/forward", forwardH.ForwardNotice)
	e.POST("/notices/:notice_id/submissions", submitH.Submit)
	e.GET("/notices/:notice_id/submissions", submitH.ListForNotice)

	e.GET("/submissions/:submission_id", submitH.Get)
	e.POST("/submissions/:submission_id/versions", submitH.Resubmit)
	e.POST("/submissions/:submission_id/forward", forwardH.ForwardProposal)
	e.POST("/submissions/:submission_id/type-change", reviewH.ChangeType)
	e.POST("/submissions/:submission_id/decision", decisionH.Decide)
	e.POST("/submissions/:submission_id/approval", decisionH.Approve)

	e.POST("/versions/:version_id/reviewers", reviewH.AssignReviewers)
	e.PUT("/versions/:version_id/reviews", reviewH.RecordReview)
	e.GET("/versions/:version_id/reviews", reviewH.ListReviews)
	e.POST("/reviews/:review_id/comments", reviewH.AddComment)
	e.PUT("/comments/:comment_id", reviewH.EditComment)
	e.DELETE("/comments/:comment_id", reviewH.DeleteComment)

	e.GET("/projects/:project_id", projectH.Get)
	e.PATCH("/projects/:project_id/status", projectH.UpdateStatus)
	e.GET("/projects/:project_id/budgets", projectH.ListBudgets)
	e.POST("/projects/:project_id/budgets", projectH.AddBudget)
	e.PUT("/budgets/:budget_id", projectH.EditBudget)
	e.DELETE("/budgets/:budget_id", projectH.DeleteBudget)
	e.POST("/projects/:project_id/tasks", projectH.AddTask)
	e.GET("/projects/:project_id/tasks", projectH.ListTasks)

	addr := ":" + cfg.AppPort
	log.Infof("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
