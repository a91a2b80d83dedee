package scrape_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slok/zentao/internal/model"
)

func bugPage(title, narrative, info string) string {
	return `<html><head><title>BUG #77 Crash on save - 禅道</title></head><body>
<div id="mainMenu"><div class="page-title"><span class="label label-id">77</span><span class="text" title="` + title + `">` + title + `</span></div></div>
<div id="mainContent" class="main-row">
  <div class="main-col col-8">
    <div class="cell"><div class="detail">
      <div class="detail-title">重现步骤</div>
      <div class="detail-content article-content">` + narrative + `</div>
    </div></div>
  </div>
  <div class="side-col col-4"><div class="cell"><table class="table table-data"><tbody>` + info + `</tbody></table></div></div>
</div></body></html>`
}

const bugInfoRows = `
<tr><th>所属产品</th><td>Shop</td></tr>
<tr><th>所属模块</th><td>/Editor</td></tr>
<tr><th>Bug类型</th><td>界面优化</td></tr>
<tr><th>严重程度</th><td><span class="label-severity" data-severity="4" title="4"></span></td></tr>
<tr><th>优先级</th><td><span class="label-pri label-pri-2" title="2">2</span></td></tr>
<tr><th>Bug状态</th><td><span class="status-bug status-active">激活</span></td></tr>
<tr><th>激活次数</th><td>2</td></tr>
<tr><th>是否确认</th><td>已确认</td></tr>
<tr><th>当前指派</th><td>alice 于 2024-05-02 09:30:00</td></tr>
<tr><th>截止日期</th><td>2024-05-10</td></tr>
<tr><th>操作系统</th><td>Windows</td></tr>
<tr><th>浏览器</th><td>Chrome</td></tr>
<tr><th>关键词</th><td>save</td></tr>
<tr><th>抄送给</th><td>bob, carol</td></tr>
<tr><th>由谁创建</th><td>dave 于 2024-05-01 10:00:00</td></tr>
<tr><th>由谁解决</th><td></td></tr>
<tr><th>解决方案</th><td></td></tr>
<tr><th>最后修改</th><td>erin 于 2024-05-03 11:00:00</td></tr>
`

const bugNarrative = `
<p><span class="stepTitle">[步骤]</span></p>
<p>Open the editor</p>
<p>Click save<br/>twice</p>
<p><img src="/zentao/file-read-1.png" alt=""/></p>
<p>[结果]</p>
<p>The app crashes</p>
<p>[期望]</p>
<p>The file is saved</p>
<p><img src="data/upload/2.png"/><img data-src="https://cdn.local/3.png"/></p>
`

func TestParseBugDetail(t *testing.T) {
	p := newParser(t)

	got, err := p.ParseBugDetail(bugPage("Crash on save", bugNarrative, bugInfoRows), "77")
	require.NoError(t, err)

	exp := model.BugDetail{
		Bug: model.Bug{
			ID:         "77",
			Title:      "Crash on save",
			Status:     model.BugStatusActive,
			Severity:   model.BugSeverityCritical,
			Priority:   model.PriorityHigh,
			Type:       model.BugTypeInterface,
			Product:    "Shop",
			OpenedBy:   "dave",
			AssignedTo: "alice",
			Confirmed:  true,
			Deadline:   "2024-05-10",
			Resolution: model.BugResolutionNone,
		},
		Module:         "/Editor",
		ActivatedCount: 2,
		OpenedDate:     "2024-05-01 10:00:00",
		LastEditedDate: "2024-05-03 11:00:00",
		AssignedInfo:   "alice 于 2024-05-02 09:30:00",
		OS:             "Windows",
		Browser:        "Chrome",
		Keywords:       "save",
		CC:             []string{"bob", "carol"},
		Steps: model.NarrativeSection{
			Text:   "Open the editor\nClick save\ntwice",
			Images: []string{"http://zentao.local/zentao/file-read-1.png"},
		},
		Result: model.NarrativeSection{
			Text: "The app crashes",
		},
		Expected: model.NarrativeSection{
			Text:   "The file is saved",
			Images: []string{"http://zentao.local/zentao/data/upload/2.png", "https://cdn.local/3.png"},
		},
	}
	assert.Equal(t, exp, got)
	assert.True(t, got.HasImages())
}

func TestParseBugDetailFields(t *testing.T) {
	tests := map[string]struct {
		html      string
		expErr    error
		expDetail func(d model.BugDetail) model.BugDetail
	}{
		"A page without any title should fail as unrecognized.": {
			html:   `<html><body><p>hello</p></body></html>`,
			expErr: model.ErrDocumentUnrecognized,
		},

		"A page without a header title should use the title element.": {
			html: `<html><head><title>BUG #77 Only title - 禅道</title></head><body></body></html>`,
			expDetail: func(d model.BugDetail) model.BugDetail {
				d.Title = "Only title"
				return d
			},
		},

		"A resolved bug should have the resolution and the resolution dates.": {
			html: bugPage("Resolved", "", `
<tr><th>解决方案</th><td>重复Bug #12</td></tr>
<tr><th>由谁解决</th><td>erin 于 2024-05-04</td></tr>
<tr><th>解决日期：</th><td>2024-05-04 12:00:00</td></tr>
<tr><th>由谁关闭</th><td>bob 于 2024-05-05 08:00:00</td></tr>
<tr><th>激活次数</th><td>many</td></tr>
`),
			expDetail: func(d model.BugDetail) model.BugDetail {
				d.Title = "Resolved"
				d.Status = model.BugStatusResolved
				d.Resolution = model.BugResolutionDuplicate
				d.ResolvedBy = "erin"
				d.ResolvedDate = "2024-05-04 12:00:00"
				d.ClosedDate = "2024-05-05 08:00:00"
				return d
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p := newParser(t)

			got, err := p.ParseBugDetail(test.html, "77")

			if test.expErr != nil {
				assert.ErrorIs(t, err, test.expErr)
				return
			}
			require.NoError(t, err)

			exp := model.BugDetail{
				Bug: model.Bug{
					ID:         "77",
					Status:     model.BugStatusActive,
					Severity:   model.BugSeverityUnknown,
					Priority:   model.PriorityUnknown,
					Type:       model.BugTypeOthers,
					Confirmed:  true,
					Resolution: model.BugResolutionNone,
				},
			}
			assert.Equal(t, test.expDetail(exp), got)
		})
	}
}

func TestParseBugDetailNarrative(t *testing.T) {
	tests := map[string]struct {
		narrative   string
		expSteps    model.NarrativeSection
		expResult   model.NarrativeSection
		expExpected model.NarrativeSection
	}{
		"Sections in order should be split and the last section flushed.": {
			narrative: `<p>[步骤]</p><p>step 1</p><p><img src="http://img.local/1.png"></p>` +
				`<p>[结果]</p><p>it fails</p>` +
				`<p>[期望]</p><p>it works</p><p><img src="http://img.local/2.png"></p>`,
			expSteps:    model.NarrativeSection{Text: "step 1", Images: []string{"http://img.local/1.png"}},
			expResult:   model.NarrativeSection{Text: "it fails"},
			expExpected: model.NarrativeSection{Text: "it works", Images: []string{"http://img.local/2.png"}},
		},

		"Content before any title should belong to the steps.": {
			narrative: `<p>intro</p><p>[结果]</p><p>broken</p>`,
			expSteps:  model.NarrativeSection{Text: "intro"},
			expResult: model.NarrativeSection{Text: "broken"},
		},

		"A bracketed text without a known keyword should be content.": {
			narrative: `<p>[步骤]</p><p>[note]</p><p>step</p>`,
			expSteps:  model.NarrativeSection{Text: "[note]\nstep"},
		},

		"A repeated section title should append to the section.": {
			narrative: `<p>[步骤]</p><p>a</p><p>[结果]</p><p>b</p><p>【步骤】</p><p>c</p>`,
			expSteps:  model.NarrativeSection{Text: "a\nc"},
			expResult: model.NarrativeSection{Text: "b"},
		},

		"Content wrapped in a single block should be scanned.": {
			narrative:   `<div><section><p>[步骤]</p><p>a</p><p>[期望]</p><p>b</p></section></div>`,
			expSteps:    model.NarrativeSection{Text: "a"},
			expExpected: model.NarrativeSection{Text: "b"},
		},

		"A step title element should start a section.": {
			narrative: `<span class="stepTitle">重现步骤</span><p>a</p><span class="stepTitle">实际结果</span><p>b</p>`,
			expSteps:  model.NarrativeSection{Text: "a"},
			expResult: model.NarrativeSection{Text: "b"},
		},

		"Images should keep the document order inside a section.": {
			narrative: `<p>[结果]</p><p><img src="a.png"></p><p>text<img src="b.png"></p><img src="c.png">`,
			expResult: model.NarrativeSection{
				Text: "text",
				Images: []string{
					"http://zentao.local/zentao/a.png",
					"http://zentao.local/zentao/b.png",
					"http://zentao.local/zentao/c.png",
				},
			},
		},

		"An expected result title should not be read as the result.": {
			narrative:   `<p>[步骤]</p><p>a</p><p>[实际结果]</p><p>crash</p><p>[期望结果]</p><p>saved</p>`,
			expSteps:    model.NarrativeSection{Text: "a"},
			expResult:   model.NarrativeSection{Text: "crash"},
			expExpected: model.NarrativeSection{Text: "saved"},
		},

		"A title sharing its paragraph with the content should start a section.": {
			narrative:   `<p>[步骤]<br/>open</p><p>[结果]<br/>crash<img src="a.png"></p><p>【期望】<br/>saved</p>`,
			expSteps:    model.NarrativeSection{Text: "open"},
			expResult:   model.NarrativeSection{Text: "crash", Images: []string{"http://zentao.local/zentao/a.png"}},
			expExpected: model.NarrativeSection{Text: "saved"},
		},

		"An empty narrative should have empty sections.": {
			narrative: ``,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			p := newParser(t)

			got, err := p.ParseBugDetail(bugPage("Narrative", test.narrative, ""), "77")
			require.NoError(t, err)

			assert.Equal(t, test.expSteps, got.Steps)
			assert.Equal(t, test.expResult, got.Result)
			assert.Equal(t, test.expExpected, got.Expected)
		})
	}
}
