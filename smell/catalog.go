package smell

// Identifiers of the supported smell categories.
const (
	DataClass         = "data-class"
	DispersedCoupling = "dispersed-coupling"
	FeatureEnvy       = "feature-envy"
	IntensiveCoupling = "intensive-coupling"
	LargeClass        = "large-class"
	LongMethod        = "long-method"
	LongParameterList = "long-parameter-list"
	RefusedBequest    = "refused-bequest"
	ShotgunSurgery    = "shotgun-surgery"
)

var catalog = map[string]Smell{
	LongMethod: {
		ID:         LongMethod,
		Name:       "Long Method",
		Definition: "A Long Method is a method that is excessively large, complex, deeply nested, and uses many variables, making it hard to understand and maintain.",
		Questions: []Question{
			{"Large Methods", "Does this file contain any methods that are excessively large (i.e., have many lines of code)? List such methods if present."},
			{"High Complexity", "Do any methods have high cyclomatic complexity (i.e., contain many conditional branches such as if, else, switch, or loops)? List such methods if present."},
			{"Deep Nesting", "Do any methods have deep nesting of control structures (e.g., multiple levels of if/else, loops within loops, etc.)? List such methods if present."},
			{"Many Variables", "Do any methods use many variables (including parameters, local variables, and fields)? List such methods if present."},
			{"Summary Judgment", "Based on your analysis, does this file contain any methods that are excessively large, complex, deeply nested, and use many variables (i.e., Long Methods)?"},
		},
	},
	LargeClass: {
		ID:         LargeClass,
		Name:       "Large Class",
		Definition: "A Large Class is a class that is excessively large and complex, has low cohesion, and heavily accesses data from other classes, often centralizing too much functionality and responsibility.",
		Questions: []Question{
			{"Large and Complex Class", "Does this file define a class that is large and complex (i.e., has many methods, many fields, or high overall complexity)? List such classes if present."},
			{"Low Cohesion", "Does the class have low cohesion (i.e., its methods do not work together, or there are many unrelated responsibilities)?"},
			{"Accesses Foreign Data", "Does the class heavily access data from other classes (i.e., frequently accesses fields or methods of other classes, either directly or via accessors)?"},
			{"Centralizes Functionality", "Does the class appear to centralize too much functionality or responsibility, acting as a controller or \"brain\" for a large part of the system?"},
			{"Summary Judgment", "Based on your analysis, does this file define a class that is excessively large, complex, low in cohesion, and heavily accesses data from other classes (i.e., a Large Class)?"},
		},
		Instruction: `Please finish your answer with "YES, I found Large Class" if you detect symptoms that could indicate this smell, or "NO, I did not find Large Class" if you do not. Do not explain your reasoning in detail, just answer the questions and provide the summary as instructed.`,
	},
	DataClass: {
		ID:         DataClass,
		Name:       "Data Class",
		Definition: "A Data Class is a class that mainly holds data, provides little or no functionality, and is primarily composed of fields and simple accessors (getters/setters), rather than meaningful behavior.",
		Questions: []Question{
			{"Many Fields", "Does this file define a class with many fields (attributes), especially public fields or fields with public accessors?"},
			{"Accessor Methods", "Does the class provide many simple accessor methods (getters and/or setters) for its fields?"},
			{"Lack of Functional Methods", "Does the class have few or no methods that implement meaningful behavior (i.e., most methods are just accessors or trivial)?"},
			{"Encapsulation", "Does the class expose its data directly (public fields) or indirectly (many public accessors), rather than hiding it behind meaningful services?"},
			{"Summary Judgment", "Based on your analysis, does this file define a class that is primarily a data holder with little or no meaningful behavior (i.e., a Data Class)?"},
		},
	},
	FeatureEnvy: {
		ID:         FeatureEnvy,
		Name:       "Feature Envy",
		Definition: "Feature Envy occurs when a method is more interested in the data of other classes than its own, often accessing many attributes or methods of another class, which may indicate the method is misplaced.",
		Questions: []Question{
			{"Methods Accessing Foreign Data", "Does this file contain any methods that access many attributes or methods of another class (directly or via accessors)? List such methods and the classes they access if present."},
			{"More Interest in Foreign Data", "For these methods, do they use more data or methods from another class than from their own class?"},
			{"Few Foreign Classes", "Are the accessed foreign attributes or methods concentrated in one or very few other classes (rather than spread across many)?"},
			{"Potential Misplacement", "Does it appear that the method would be more appropriately placed in the class whose data it most frequently accesses?"},
			{"Summary Judgment", "Based on your analysis, does this file contain any methods that are more interested in the data of other classes than their own (i.e., Feature Envy)?"},
		},
		Instruction: `Please finish your answer with "YES, I found Feature Envy" if you detect symptoms that could indicate this smell, or "NO, I did not find Feature Envy" if you do not. Do not explain your reasoning in detail, just answer the questions and provide the summary as instructed.`,
	},
	IntensiveCoupling: {
		ID:         IntensiveCoupling,
		Name:       "Intensive Coupling",
		Definition: "Intensive Coupling occurs when a method calls many methods, but these calls are concentrated in one or a few classes, making the method highly dependent on a small set of provider classes. This can make the code fragile and hard to maintain.",
		Questions: []Question{
			{"Methods Calling Many Methods", "Does this file contain any methods that call many other methods? List such methods if present."},
			{"Calls Concentrated in Few Classes", "For these methods, are most of the called methods concentrated in one or a few classes (rather than spread across many different classes)? List the provider classes if possible."},
			{"Method Complexity", "Are these methods complex, with deep nesting or many conditional branches?"},
			{"Potential Fragility", "If one of the provider classes were to change, would it likely require changes in this method or cause widespread impact? Please give examples."},
			{"Summary Judgment", "Based on your analysis, does this file contain any methods that call many methods concentrated in one or a few classes (i.e., Intensive Coupling)?"},
		},
	},
	DispersedCoupling: {
		ID:         DispersedCoupling,
		Name:       "Dispersed Coupling",
		Definition: "Dispersed Coupling occurs when a method is excessively tied to many other classes, calling a few methods from each of a large number of unrelated classes, which can lead to ripple effects and maintenance problems.",
		Questions: []Question{
			{"Methods Calling Many Classes", "Does this file contain any methods that call methods from a large number of different classes? List such methods if present."},
			{"Few Calls Per Class", "For these methods, are only a few methods called from each of the many different classes (rather than many calls to just a few classes)?"},
			{"Method Size and Focus", "Are these methods large or not focused on a single task (i.e., do they do many things or have complex logic)?"},
			{"Potential Ripple Effects", "If one of the called classes or methods were to change, would it likely require changes in this method or in many places in the codebase? Please give examples."},
			{"Law of Demeter Violations", "Do any methods in this file contain long invocation chains (e.g., a.b().c().d()), which may indicate indirect, dispersed coupling?"},
			{"Summary Judgment", "Based on your analysis, does this file contain any methods that are excessively tied to many other classes, each with only a few calls (i.e., Dispersed Coupling)?"},
		},
	},
	ShotgunSurgery: {
		ID:         ShotgunSurgery,
		Name:       "Shotgun Surgery",
		Definition: "Shotgun Surgery occurs when a small change in requirements would require making many small, similar changes in multiple places across the codebase.",
		Scope:      "Since you only have access to this file, focus on local patterns and structures that could contribute to this smell if they are present in other files as well.",
		Questions: []Question{
			{"Repetitive or Similar Methods", "Does this file contain many methods that perform similar, small, or repetitive tasks (such as forwarding calls, updating similar fields, or making similar changes)?"},
			{"Duplicated or Repeated Logic", "Are there patterns where the same or very similar logic is repeated across multiple methods or classes within this file?"},
			{"Widespread External Interactions", "Do methods in this file frequently interact with many different classes, especially in a way that suggests a change in one place would require similar changes in many methods?"},
			{"Change Impact Within the File", "If a business rule, data structure, or method signature used in this file were to change, would it likely require updating many methods in this file? Please give examples."},
			{"Summary Judgment", "Based on your analysis, does this file show signs that a small change in requirements would require many small edits in multiple places (i.e., Shotgun Surgery)? If so, summarize the evidence."},
		},
	},
	LongParameterList: {
		ID:         LongParameterList,
		Name:       "Long Parameter List",
		Definition: "Long Parameter List occurs when a method or function accepts an excessive number of parameters, which can harm code readability, maintainability, and testability, and may indicate that the method is trying to do too much or is violating the Single Responsibility Principle.",
		Questions: []Question{
			{"Methods with Many Parameters", "Does this file contain any methods or constructors that accept a large number of parameters? List such methods and the number of parameters if present."},
			{"Complexity and Responsibility", "Do these methods appear to perform complex or wide-ranging tasks, suggesting they may be trying to do too much?"},
			{"Parameter Grouping", "Are there groups of parameters that could logically be combined into objects or data structures to simplify the parameter list?"},
			{"Potential for Refactoring", "Could these methods be refactored by breaking them into simpler, more specific methods, or by encapsulating parameters into objects?"},
			{"Summary Judgment", "Based on your analysis, does this file contain any methods or constructors with excessively long parameter lists (i.e., Long Parameter List)?"},
		},
	},
	RefusedBequest: {
		ID:         RefusedBequest,
		Name:       "Refused Bequest",
		Definition: "Refused Bequest occurs when a subclass inherits from a parent class but does not meaningfully use, override, or specialize inherited (especially protected) members, instead focusing on unrelated new functionality and fields. This suggests the subclass may not honor or make use of the parent's contract or responsibilities.",
		Scope:      "Since you only have access to this file, look for local patterns and symptoms, even if you cannot fully confirm the smell.",
		Questions: []Question{
			{"Inheritance Pattern", "Does this file define a class that extends another class? If so, what is the parent class's name?"},
			{"Use of Inherited Functionality", "Does the subclass override, call, or make substantial use of inherited methods or fields from the parent class (e.g., method overrides that change core behavior, use of super., or interacting directly with inherited state)? Are any overrides minor or trivial (e.g., calling only super.method() or adding a one-liner)?"},
			{"New/Independent Functionality", "Does the subclass introduce its own fields and methods that represent significant new or different responsibilities, unrelated to the parent's likely concerns?"},
			{"Breadth of Subclass", "Is the subclass non-trivial, with several additional fields and methods, indicating it is not simply a marker or light extension?"},
			{"Local Symptom Summary", "Considering your answers above, does the subclass show symptoms of Refused Bequest, meaning it extends a parent but focuses largely on different domains, rarely or weakly uses inherited features, and introduces functionality of its own? If so, briefly state the clearest sign (e.g., \"many new fields/methods; few meaningful overrides; unrelated logic dominates\")."},
		},
		Instruction: `If you find symptoms or strong suspicion of Refused Bequest, answer with "YES, I found Refused Bequest" and state the main evidence in a short phrase or sentence.
If not, answer with "NO, I did not find Refused Bequest".`,
	},
}
