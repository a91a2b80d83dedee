package locale

import "github.com/slok/zentao/internal/model"

// ZhCN is the locale of a Zentao instance rendered in simplified Chinese.
var ZhCN = Locale{
	TaskStatuses: map[string]model.TaskStatus{
		"未开始": model.TaskStatusWait,
		"进行中": model.TaskStatusDoing,
		"已完成": model.TaskStatusDone,
		"已暂停": model.TaskStatusPause,
		"已取消": model.TaskStatusCancel,
		"已关闭": model.TaskStatusClosed,
	},
	BugStatuses: map[string]model.BugStatus{
		"激活":  model.BugStatusActive,
		"已解决": model.BugStatusResolved,
		"已关闭": model.BugStatusClosed,
	},
	BugTypes: map[string]model.BugType{
		"代码错误": model.BugTypeCodeError,
		"界面优化": model.BugTypeInterface,
		"配置相关": model.BugTypeConfig,
		"安装部署": model.BugTypeInstall,
		"安全相关": model.BugTypeSecurity,
		"性能问题": model.BugTypePerformance,
		"标准规范": model.BugTypeStandard,
		"测试脚本": model.BugTypeAutomation,
		"设计缺陷": model.BugTypeDesignDefect,
		"其他":   model.BugTypeOthers,
	},
	BugResolutions: map[string]model.BugResolution{
		"已解决":   model.BugResolutionFixed,
		"不予解决":  model.BugResolutionWontFix,
		"外部原因":  model.BugResolutionExternal,
		"重复Bug": model.BugResolutionDuplicate,
		"无法重现":  model.BugResolutionNotRepro,
		"延期处理":  model.BugResolutionPostponed,
		"设计如此":  model.BugResolutionByDesign,
		"无需修复":  model.BugResolutionWillNotFix,
		"转为需求":  model.BugResolutionToStory,
	},

	UnconfirmedMarker: "未确认",
	AtMarker:          "于",
	SectionKeywords: SectionKeywords{
		Steps:    "步骤",
		Result:   "结果",
		Expected: "期望",
	},
	Labels: Labels{
		Product:        []string{"所属产品"},
		Project:        []string{"所属项目", "所属执行"},
		Module:         []string{"所属模块"},
		Plan:           []string{"所属计划"},
		Case:           []string{"来源用例", "相关用例"},
		Type:           []string{"Bug类型", "任务类型"},
		Severity:       []string{"严重程度"},
		Priority:       []string{"优先级"},
		Status:         []string{"Bug状态", "任务状态"},
		ActivatedCount: []string{"激活次数"},
		Confirmed:      []string{"是否确认"},
		AssignedTo:     []string{"当前指派", "指派给"},
		Deadline:       []string{"截止日期"},
		FeedbackBy:     []string{"反馈者"},
		NotifyEmail:    []string{"通知邮箱"},
		OS:             []string{"操作系统"},
		Browser:        []string{"浏览器"},
		Keywords:       []string{"关键词"},
		CC:             []string{"抄送给"},
		OpenedBy:       []string{"由谁创建"},
		ResolvedBy:     []string{"由谁解决"},
		ResolvedDate:   []string{"解决日期"},
		Resolution:     []string{"解决方案"},
		ClosedBy:       []string{"由谁关闭"},
		ClosedDate:     []string{"关闭日期"},
		LastEdited:     []string{"最后修改"},
		EstimatedStart: []string{"预计开始"},
		ActualStart:    []string{"实际开始"},
		Estimate:       []string{"最初预计", "预计工时"},
		Consumed:       []string{"总计消耗", "消耗工时"},
		Left:           []string{"预计剩余", "剩余工时"},
	},

	ImagePlaceholder:   "图片链接",
	UnknownReason:      "未知原因",
	SubmissionRejected: "任务完成提交失败",
}
