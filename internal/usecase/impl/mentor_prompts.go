package impl

import (
	"fmt"

	"mindset/internal/domain/entity"
)

// Interest categories offered during onboarding.
const interestCategories = "Writing, Design, Marketing, Teaching, Coding, Video, Other"

// incomePaths maps a primary interest category to its recommended income path.
var incomePaths = map[string]string{
	"Writing":   "Freelance writing using AI assistants.",
	"Design":    "Creating Print-on-Demand products with AI art.",
	"Marketing": "Managing social media with AI-generated content.",
	"Teaching":  "Building an online course with AI-powered tools.",
	"Coding":    "Developing AI automations or simple web apps.",
	"Video":     "Creating viral YouTube Shorts with AI video tools.",
	"Other":     "General content creation with AI tools.",
}

// recommendedPathFor resolves the income path for a primary interest,
// falling back to the generic "Other" path when the interest is unmapped.
func recommendedPathFor(primaryInterest string) string {
	if path, ok := incomePaths[primaryInterest]; ok {
		return path
	}

	return incomePaths["Other"]
}

const (
	greetingWelcome = "🚀 Welcome to Millionaire Mindset! Let’s unlock your path to success — tell me about yourself or your idea so we can build your first earning plan."

	greetingInterestPrompt = "To start, what are you passionate about? You can pick one or more.\n- Writing\n- Design\n- Marketing\n- Teaching\n- Coding\n- Video\n- Other"

	interestAck = "Awesome choice! That's a field with a ton of potential."

	goalPrompt = "Got it! Now, what's your main goal with this?\n- Earn income quickly\n- Learn a new skill deeply\n- Build a side project for freedom"

	planIntro = "This is a great starting point. Would you like me to create a 7-day action plan for this path?"

	planKickoff = "Let's start with Day 1! I'll be here to track your progress. Let me know when you've completed a task."

	planDone = "You've completed the 7-day plan! That's incredible! You've built some real momentum. Ready to talk about how to monetize this?"

	recoveryMessage = "I seem to be a bit lost. Let's get back on track. What were you passionate about again?"
)

// basePersona is prepended to every generation call made by the staged flow.
func basePersona(profile *entity.UserProfile) string {
	name := ""
	if profile != nil {
		name = profile.Name
	}

	return fmt.Sprintf(`You are a friendly, motivational AI mentor named 'Mindy'. Your goal is to help users earn online using AI tools.
Your tone is encouraging, witty, and positive. Never give financial or legal advice.
Keep your responses concise and always end with a clear question or next step.
Current User: %s`, name)
}

func interestExtractionPrompt(userMessage string) string {
	return fmt.Sprintf(`From the user's message, extract the category of their interest. The categories are: %s. Return ONLY the category name(s), comma-separated if multiple. User message: %q`, interestCategories, userMessage)
}

func goalExtractionPrompt(userMessage string) string {
	return fmt.Sprintf(`From the user's message, extract which of these goals they chose: 'Earn income quickly', 'Learn a new skill deeply', or 'Build a side project for freedom'. Return a short summary like 'Fast Income', 'Deep Learning', or 'Freedom Building'. User message: %q`, userMessage)
}

func pathConfirmationPrompt(profile *entity.UserProfile, userMessage string) string {
	return fmt.Sprintf(`%s
The user is confirming their chosen path. Their message is: %q.
Analyze if their message is a confirmation (e.g., "yes", "sounds good", "ok", "let's do it").
If they confirm, respond with an enthusiastic "Alright, let's do this! Generating your 7-day plan now...".
If they decline or suggest something else, respond with "No problem! What would you prefer to focus on instead?".`, basePersona(profile), userMessage)
}

func progressUpdatePrompt(profile *entity.UserProfile, userMessage string) string {
	return fmt.Sprintf(`%s
The user is providing an update on their 7-day plan. Their message is: %q.
Analyze their message to determine if they completed a task.
If they completed a task, provide an encouraging response like "Awesome job! Keep that momentum going!".
If they are stuck, offer help or a motivational tip like "No worries, every expert was once a beginner. What's the specific part you're stuck on?".`, basePersona(profile), userMessage)
}

func monetizationPrompt(profile *entity.UserProfile) string {
	chosenPath := ""
	if profile != nil {
		chosenPath = profile.ChosenPath
	}

	return fmt.Sprintf(`%s
The user has completed their initial 7-day plan and is ready to monetize.
Their chosen path is '%s'.
Give them a simple, actionable first step to start earning. For 'Freelance writing', suggest creating a Fiverr gig. For 'Print-on-Demand', suggest an Etsy store listing. For 'YouTube Shorts', suggest setting up their channel profile.
End by asking if they're ready for that step.`, basePersona(profile), chosenPath)
}

// sevenDayPlan renders the fixed starter plan for the given path.
func sevenDayPlan(path string) string {
	return fmt.Sprintf(`Here is your 7-day starter plan for **%s**:
- **Day 1:** Watch a 10-min intro video on your chosen path & pick one AI tool.
- **Day 2:** Create an account on a relevant platform (e.g., Fiverr, Redbubble, YouTube).
- **Day 3:** Use an AI tool to generate your first piece of content (an article, a design, a video script).
- **Day 4:** Refine and improve your creation. Get feedback if you can!
- **Day 5:** Create a simple one-page portfolio or profile to showcase your work.
- **Day 6:** Share your work with one person or on one social media platform.
- **Day 7:** Review your week, note what you learned, and plan one small next step.`, path)
}
