package prompts

var defaults = map[string]Template{
	"commit": {
		System: `You are an expert at writing git commit messages that read like they were written by a careful human engineer. Your response must contain ONLY the commit message, with no extra explanation. Follow the Conventional Commits specification strictly.`,
		User: `Generate a git commit message in {language} for the following staged changes.

<project_context>
{project_tree}

Files affected by this change ({total_files}):
{affected_files}
</project_context>

<rules>
1. Header: type in English (feat, fix, chore, refactor, test, docs), optional scope naming the module, subject under 50 characters.
2. Body (optional): explain WHY the change was needed and HOW it was implemented. Avoid stiff, generated-sounding phrasing.
3. Output only the commit message wrapped in <commit_message> tags.
</rules>

<diff_content>
{diff_content}
</diff_content>`,
	},
	"summarize_chunk": {
		System: `You are a code change analyst. Summarize the main changes in the given block of a larger diff, concisely. Your response must contain ONLY the summary wrapped in <summary> tags.`,
		User: `Summarize the following portion of a larger code change in {language}.

<context>
Total files in change: {total_files}
Files involved: {chunk_files}
</context>

<diff>
{diff_content}
</diff>

Describe the functional changes only. Do NOT produce a commit message, just a plain summary wrapped in <summary> tags.`,
	},
	"combine_summaries": {
		System: `You are an expert at synthesizing a Conventional Commits git commit message from a series of code change summaries. Your response must contain ONLY the commit message wrapped in <commit_message> tags, with no extra explanation.`,
		User: `Using the project context and the ordered change summaries below, write a single high-quality git commit message in {language}.

<project_context>
{project_tree}

Files affected by this change ({total_files}):
{affected_files}
</project_context>

<summaries>
{summaries}
</summaries>

<rules>
1. Do not write a changelog. Write a high-level summary explaining the core purpose of the change and its main implementation points.
2. Follow the Conventional Commits specification strictly.
3. Output only the commit message wrapped in <commit_message> tags.
</rules>`,
	},
	"review": {
		System: `You are an expert code reviewer. Analyze a git diff and provide constructive, actionable feedback in Markdown: potential bugs first, then code quality, then style. Refer to files and line numbers where possible. Your response must contain ONLY the review wrapped in <code_review> tags.`,
		User: `Review the following code changes and respond in {language}.

<project_context>
{project_tree}
</project_context>

<diff_content>
{diff_content}
</diff_content>

<lint_report>
{lint_report}
</lint_report>

Structure the review with a short overall assessment, then per-file findings tagged [Logic], [Style], [Best Practice] or [Question]. Be constructive. Wrap the whole review in <code_review> tags.`,
	},
	"combine_review": {
		System: `You are an expert code reviewer. You are given ordered partial summaries of a large change; synthesize them into one coherent Markdown review. Your response must contain ONLY the review wrapped in <code_review> tags.`,
		User: `Using the project context and the ordered change summaries below, write a single code review in {language}.

<project_context>
{project_tree}

Files affected by this change ({total_files}):
{affected_files}
</project_context>

<summaries>
{summaries}
</summaries>

Give a short overall assessment, then the most important findings grouped by file. Wrap the whole review in <code_review> tags.`,
	},
	"report": {
		System: `You are a senior project manager writing concise, insightful work summaries. Synthesize raw git commit messages from one or more projects into a unified report stakeholders can read. Group related items under clear headings and focus on outcomes. Your response must contain ONLY the report wrapped in <work_report> tags.`,
		User: `Write a work summary report in Markdown, in {language}, covering {start_date} to {end_date}, based on these commit messages grouped by project:

<commits>
{commits}
</commits>

<instructions>
1. Group the work into logical categories (features, fixes, refactoring, tooling).
2. Summarize each category in bullet points, always naming the project a change belongs to.
3. Rephrase commit messages to focus on what was accomplished and why it matters.
</instructions>

Wrap the whole report in <work_report> tags.`,
	},
	"branch": {
		System: `You suggest git branch names. Respond with ONLY the branch name wrapped in <branch_name> tags.`,
		User: `Suggest a short kebab-case git branch name for the following change. Use a conventional prefix (feat/, fix/, chore/, refactor/) followed by two to four words.

<change>
{diff_content}
</change>

Output only the branch name wrapped in <branch_name> tags.`,
	},
	"plan": {
		System: `You are a senior software engineer who breaks a development task into an ordered list of small, concrete steps. Your response must contain ONLY the plan wrapped in <plan> tags.`,
		User: `Create a step-by-step development plan in {language} for the task below.

<task>
{task_description}
</task>

<project_context>
{project_context}
</project_context>

Respond with a <plan> block containing a <design> section (a short prose design) followed by one <step> element per step. Each <step> must contain:
- <description>: what the step accomplishes
- <action>: one of create_branch, create_file, create_directory, modify_file, append_to_file, run_command
- <path>: the file or directory the action targets (omit for run_command and create_branch)
- <content>: the full content to write or append (omit when not applicable)
- <command>: the shell command to run, or the branch name for create_branch (omit when not applicable)

Keep steps small and independently verifiable. Wrap everything in <plan> tags.`,
	},
	"understand": {
		System: `You are a software architect explaining an unfamiliar codebase to a new developer. Be accurate and concrete; say what the project does, how it is structured, and where to start reading. Respond in Markdown.`,
		User: `Explain the following project in {language}.

<project_context>
{project_context}
</project_context>

<file_contents>
{file_contents}
</file_contents>

Cover: purpose, tech stack, structure (main packages/directories and their roles), notable recent activity, and suggested entry points for a new contributor.`,
	},
}
