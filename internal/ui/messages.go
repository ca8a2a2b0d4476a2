package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// zhHans holds the Simplified Chinese catalog. Keys are the English
// messages, which also serve as the English translation.
var zhHans = []struct{ key, msg string }{
	// steps
	{"succeeded", "成功"},
	{"failed", "失败"},
	{"Downloading %s", "下载%s"},
	{"project template", "项目模板"},
	{"CI template", "gitlab-ci 配置模板"},
	{"Rendering project template", "渲染项目模板"},
	{"Rendering CI template", "渲染 CI 模板"},
	{"Initializing git repository", "初始化 git 仓库"},
	{"Installing dependencies with yarn", "使用 yarn 安装项目依赖"},
	{"Building %s", "构建 %s"},
	{"Publishing %s %s", "发布 %s %s"},
	{"Pushing to %s", "推送代码到 %s"},

	// prompts
	{"Choose a project template", "请选择一种模板类型"},
	{"%s already exists. Continue and overwrite its contents?", "文件 %s 已存在，是否继续？（继续将覆盖原文件内容）"},
	{"Install CI configuration files?", "是否需要安装 CI 相关文件？"},
	{"Choose a CI template", "请选择一种 CI 模板"},
	{"Which template does this project use?", "请选择项目所属模板"},

	// create / addCI
	{"Successfully created project %s", "项目 %s 创建成功"},
	{"CI files added to %s", "已为 %s 添加 CI 文件"},
	{"Make sure the template name is correct", "请保证模板名称正确"},
	{"Make sure you have access to the template repositories (%s/docker and %s/template); ask your lead for access if you do not.", "请确保拥有对应模板仓库（%s/docker 以及 %s/template）的权限，若无，请联系上级添加权限。"},
	{"Failed to create project", "创建项目出错"},
	{"Failed to add CI files", "添加 CI 文件出错"},
	{"No CI templates are configured", "模板配置中没有可用的 CI 模板"},
	{"Operation cancelled", "操作已取消"},

	// update
	{"Only %s can be updated", "目前仅支持更新 %s"},
	{"No %s in the current directory", "当前目录下不存在 %s 文件"},
	{"No %s in the current directory or its subdirectories", "当前目录及其子目录下不存在 %s 文件"},
	{"Updated files:", "匹配文件："},
	{"Update succeeded", "更新成功"},
	{"Failed to update files", "更新文件内容出错"},

	// publish
	{"Published %s %s", "%s %s 发布成功"},
	{"package.json version differed from the tag; updated it and pushed to %s", "发现 package.json 中版本号与本次发布不一致，已更改版本号并且推送至 %s 分支"},
	{"Could not restore %s: %v", "还原 %s 失败：%v"},
	{"Publish failed; check the error and make sure the tag follows the naming convention", "发布失败，请查看错误信息并保证打标签已遵循相关规范"},
	{"No tag to publish; set CI_COMMIT_REF_NAME", "没有可发布的标签，请设置 CI_COMMIT_REF_NAME"},
}

func init() {
	for _, m := range zhHans {
		_ = message.SetString(language.SimplifiedChinese, m.key, m.msg)
	}
}
